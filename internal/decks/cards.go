package decks

import "github.com/magnate-game/magnate/internal/models"

func cardSet(kind models.DeckKind) []*models.Card {
	if kind == models.DeckOpportunityKnocks {
		return OpportunityKnocksCards()
	}
	return PotLuckCards()
}

// PotLuckCards returns the fixed Pot Luck deck
func PotLuckCards() []*models.Card {
	return []*models.Card{
		potLuck("inheritance", "You inherit £200", models.CardEffect{Kind: models.EffectCollect, Amount: 200}),
		potLuck("beauty-contest", "You have won 2nd prize in a beauty contest, collect £50", models.CardEffect{Kind: models.EffectCollect, Amount: 50}),
		potLuck("old-creek", "You are up the creek with no paddle - go back to the Old Creek", models.CardEffect{Kind: models.EffectMoveTo, Target: 2}),
		potLuck("student-loan", "Student loan refund. Collect £20", models.CardEffect{Kind: models.EffectCollect, Amount: 20}),
		potLuck("bank-error", "Bank error in your favour. Collect £200", models.CardEffect{Kind: models.EffectCollect, Amount: 200}),
		potLuck("text-books", "Pay bill for text books of £100", models.CardEffect{Kind: models.EffectPay, Amount: 100}),
		potLuck("taxi-bill", "Mega late night taxi bill pay £50", models.CardEffect{Kind: models.EffectPay, Amount: 50}),
		potLuck("advance-go", "Advance to go", models.CardEffect{Kind: models.EffectMoveTo, Target: 1}),
		potLuck("bitcoin-sale", "From sale of Bitcoin you get £50", models.CardEffect{Kind: models.EffectCollect, Amount: 50}),
		potLuck("bitcoin-shortfall", "Bitcoin assets fall - pay off Bitcoin short fall", models.CardEffect{Kind: models.EffectPay, Amount: 50}),
		potLuck("small-fine", "Pay a £10 fine", models.CardEffect{Kind: models.EffectFine, Amount: 10}),
		potLuck("insurance", "Pay insurance fee of £50", models.CardEffect{Kind: models.EffectFine, Amount: 50}),
		potLuck("savings-bond", "Savings bond matures, collect £100", models.CardEffect{Kind: models.EffectCollect, Amount: 100}),
		potLuck("go-to-jail", "Go to jail. Do not pass GO, do not collect £200", models.CardEffect{Kind: models.EffectGoToJail}),
		potLuck("share-interest", "Received interest on shares of £25", models.CardEffect{Kind: models.EffectCollect, Amount: 25}),
		potLuck("birthday", "It's your birthday. Collect £10 from each player", models.CardEffect{Kind: models.EffectBirthday, Amount: 10}),
		potLuck("jail-free", "Get out of jail free", models.CardEffect{Kind: models.EffectJailFree}),
	}
}

// OpportunityKnocksCards returns the fixed Opportunity Knocks deck
func OpportunityKnocksCards() []*models.Card {
	return []*models.Card{
		opportunity("dividend", "Bank pays you dividend of £50", models.CardEffect{Kind: models.EffectCollect, Amount: 50}),
		opportunity("lip-sync", "You have won a lip sync battle. Collect £100", models.CardEffect{Kind: models.EffectCollect, Amount: 100}),
		opportunity("turing-heights", "Advance to Turing Heights", models.CardEffect{Kind: models.EffectMoveTo, Target: 40}),
		opportunity("han-xin", "Advance to Han Xin Gardens", models.CardEffect{Kind: models.EffectMoveTo, Target: 25}),
		opportunity("speeding", "Fined £15 for speeding", models.CardEffect{Kind: models.EffectFine, Amount: 15}),
		opportunity("university-fees", "Pay university fees of £150", models.CardEffect{Kind: models.EffectPay, Amount: 150}),
		opportunity("hove-station", "Take a trip to Hove station", models.CardEffect{Kind: models.EffectMoveTo, Target: 16}),
		opportunity("loan-matures", "Loan matures, collect £150", models.CardEffect{Kind: models.EffectCollect, Amount: 150}),
		opportunity("repairs-major", "You are assessed for repairs, £40/house, £115/hotel", models.CardEffect{Kind: models.EffectRepairs, PerHouse: 40, PerHotel: 115}),
		opportunity("advance-go", "Advance to GO", models.CardEffect{Kind: models.EffectMoveTo, Target: 1}),
		opportunity("repairs-minor", "You are assessed for repairs, £25/house, £100/hotel", models.CardEffect{Kind: models.EffectRepairs, PerHouse: 25, PerHotel: 100}),
		opportunity("back-three", "Go back 3 spaces", models.CardEffect{Kind: models.EffectMoveBack, Spaces: 3}),
		opportunity("skywalker", "Advance to Skywalker Drive", models.CardEffect{Kind: models.EffectMoveTo, Target: 12}),
		opportunity("go-to-jail", "Go to jail. Do not pass GO, do not collect £200", models.CardEffect{Kind: models.EffectGoToJail}),
		opportunity("hoverboard", "Drunk in charge of a hoverboard. Fine £30", models.CardEffect{Kind: models.EffectFine, Amount: 30}),
		opportunity("jail-free", "Get out of jail free", models.CardEffect{Kind: models.EffectJailFree}),
	}
}

func potLuck(id, text string, effect models.CardEffect) *models.Card {
	return &models.Card{ID: id, Deck: models.DeckPotLuck, Text: text, Effect: effect}
}

func opportunity(id, text string, effect models.CardEffect) *models.Card {
	return &models.Card{ID: id, Deck: models.DeckOpportunityKnocks, Text: text, Effect: effect}
}
