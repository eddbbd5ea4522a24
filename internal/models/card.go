package models

// DeckKind names one of the two card decks
type DeckKind string

const (
	// DeckPotLuck is the "Pot Luck" deck
	DeckPotLuck DeckKind = "pot_luck"

	// DeckOpportunityKnocks is the "Opportunity Knocks" deck
	DeckOpportunityKnocks DeckKind = "opportunity_knocks"
)

// CardEffectKind is the closed set of card behaviors
type CardEffectKind string

const (
	// EffectCollect pays the player a fixed amount from the bank
	EffectCollect CardEffectKind = "collect"

	// EffectPay charges the player a fixed amount, to the bank
	EffectPay CardEffectKind = "pay"

	// EffectFine charges the player a fixed amount, into free parking
	EffectFine CardEffectKind = "fine"

	// EffectMoveTo moves the player to an absolute position
	EffectMoveTo CardEffectKind = "move_to"

	// EffectMoveBack moves the player a fixed number of spaces backwards
	EffectMoveBack CardEffectKind = "move_back"

	// EffectGoToJail jails the player, with no pass-GO bonus
	EffectGoToJail CardEffectKind = "go_to_jail"

	// EffectJailFree grants a retained get-out-of-jail-free card
	EffectJailFree CardEffectKind = "jail_free"

	// EffectBirthday collects a fixed amount from every other player
	EffectBirthday CardEffectKind = "birthday"

	// EffectRepairs charges per house and per hotel across the
	// player's developed properties
	EffectRepairs CardEffectKind = "repairs"
)

// CardEffect is the typed effect a drawn card applies
type CardEffect struct {
	// Kind selects the effect behavior
	Kind CardEffectKind

	// Amount is the money moved for collect/pay/fine/birthday effects
	Amount int

	// Target is the absolute destination for move_to effects
	Target int

	// Spaces is the backwards distance for move_back effects
	Spaces int

	// PerHouse and PerHotel are the repairs assessment rates
	PerHouse int
	PerHotel int
}

// Card is one fixed member of a deck
type Card struct {
	// ID identifies the card within its deck
	ID string

	// Deck is the deck the card belongs to
	Deck DeckKind

	// Text is the printable card text
	Text string

	// Effect is the card's typed effect
	Effect CardEffect
}
