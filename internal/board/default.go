package board

import "github.com/magnate-game/magnate/internal/models"

func street(pos int, name, group string, price, rent, houseCost int, houseRents []int) *models.SpaceDefinition {
	return &models.SpaceDefinition{
		Position:   pos,
		Name:       name,
		Kind:       models.SpaceKindStreet,
		Group:      group,
		Price:      price,
		Rent:       rent,
		HouseCost:  houseCost,
		HouseRents: houseRents,
	}
}

func cardDraw(pos int, name string, deck models.DeckKind) *models.SpaceDefinition {
	return &models.SpaceDefinition{Position: pos, Name: name, Kind: models.SpaceKindCardDraw, Deck: deck}
}

// Default returns the built-in board. Layout and prices follow the classic
// tycoon arrangement: GO at 1, jail at 11, free parking at 21, go-to-jail at
// 31, stations every ten spaces from 6, utilities at 13 and 29.
func Default() *Catalog {
	spaces := []*models.SpaceDefinition{
		{Position: 1, Name: "Go", Kind: models.SpaceKindGo},
		street(2, "The Old Creek", "Brown", 60, 2, 50, []int{10, 30, 90, 160, 250}),
		cardDraw(3, "Pot Luck", models.DeckPotLuck),
		street(4, "Gangsters Paradise", "Brown", 60, 4, 50, []int{20, 60, 180, 320, 450}),
		{Position: 5, Name: "Income Tax", Kind: models.SpaceKindTax, TaxAmount: 200},
		{Position: 6, Name: "Brighton Station", Kind: models.SpaceKindStation, Price: 200, Rent: 25},
		street(7, "The Angels Delight", "Blue", 100, 6, 50, []int{30, 90, 270, 400, 550}),
		cardDraw(8, "Opportunity Knocks", models.DeckOpportunityKnocks),
		street(9, "Potter Avenue", "Blue", 100, 6, 50, []int{30, 90, 270, 400, 550}),
		street(10, "Granger Drive", "Blue", 120, 8, 50, []int{40, 100, 300, 450, 600}),
		{Position: 11, Name: "Jail", Kind: models.SpaceKindJail},
		street(12, "Skywalker Drive", "Purple", 140, 10, 100, []int{50, 150, 450, 625, 750}),
		{Position: 13, Name: "Tesla Power Co", Kind: models.SpaceKindUtility, Price: 150},
		street(14, "Wookie Hole", "Purple", 140, 10, 100, []int{50, 150, 450, 625, 750}),
		street(15, "Rey Lane", "Purple", 160, 12, 100, []int{60, 180, 500, 700, 900}),
		{Position: 16, Name: "Hove Station", Kind: models.SpaceKindStation, Price: 200, Rent: 25},
		street(17, "Bishop Drive", "Orange", 180, 14, 100, []int{70, 200, 550, 750, 950}),
		cardDraw(18, "Pot Luck", models.DeckPotLuck),
		street(19, "Dunham Street", "Orange", 180, 14, 100, []int{70, 200, 550, 750, 950}),
		street(20, "Broyles Lane", "Orange", 200, 16, 100, []int{80, 220, 600, 800, 1000}),
		{Position: 21, Name: "Free Parking", Kind: models.SpaceKindFreeParking},
		street(22, "Yue Fei Square", "Red", 220, 18, 150, []int{90, 250, 700, 875, 1050}),
		cardDraw(23, "Opportunity Knocks", models.DeckOpportunityKnocks),
		street(24, "Mulan Rouge", "Red", 220, 18, 150, []int{90, 250, 700, 875, 1050}),
		street(25, "Han Xin Gardens", "Red", 240, 20, 150, []int{100, 300, 750, 925, 1100}),
		{Position: 26, Name: "Falmer Station", Kind: models.SpaceKindStation, Price: 200, Rent: 25},
		street(27, "Shatner Close", "Yellow", 260, 22, 150, []int{110, 330, 800, 975, 1150}),
		street(28, "Picard Avenue", "Yellow", 260, 22, 150, []int{110, 330, 800, 975, 1150}),
		{Position: 29, Name: "Edison Water", Kind: models.SpaceKindUtility, Price: 150},
		street(30, "Crusher Creek", "Yellow", 280, 24, 150, []int{120, 360, 850, 1025, 1200}),
		{Position: 31, Name: "Go to Jail", Kind: models.SpaceKindGoToJail},
		street(32, "Sirat Mews", "Green", 300, 26, 200, []int{130, 390, 900, 1100, 1275}),
		street(33, "Ghengis Crescent", "Green", 300, 26, 200, []int{130, 390, 900, 1100, 1275}),
		cardDraw(34, "Pot Luck", models.DeckPotLuck),
		street(35, "Ibis Close", "Green", 320, 28, 200, []int{150, 450, 1000, 1200, 1400}),
		{Position: 36, Name: "Portslade Station", Kind: models.SpaceKindStation, Price: 200, Rent: 25},
		cardDraw(37, "Opportunity Knocks", models.DeckOpportunityKnocks),
		street(38, "James Webb Way", "Deep blue", 350, 35, 200, []int{175, 500, 1100, 1300, 1500}),
		{Position: 39, Name: "Super Tax", Kind: models.SpaceKindTax, TaxAmount: 100},
		street(40, "Turing Heights", "Deep blue", 400, 50, 200, []int{200, 600, 1400, 1700, 2000}),
	}

	catalog, err := NewCatalog(spaces)
	if err != nil {
		// The built-in board is validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return catalog
}
