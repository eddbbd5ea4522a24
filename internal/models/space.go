package models

// SpaceKind is the closed set of board space behaviors
type SpaceKind string

const (
	// SpaceKindStreet is a purchasable, developable street property
	SpaceKindStreet SpaceKind = "street"

	// SpaceKindStation is a purchasable station
	SpaceKindStation SpaceKind = "station"

	// SpaceKindUtility is a purchasable utility
	SpaceKindUtility SpaceKind = "utility"

	// SpaceKindTax debits a fixed amount to the bank
	SpaceKindTax SpaceKind = "tax"

	// SpaceKindCardDraw draws from one of the two decks
	SpaceKindCardDraw SpaceKind = "card_draw"

	// SpaceKindJail is the jail / just-visiting space
	SpaceKindJail SpaceKind = "jail"

	// SpaceKindGoToJail sends the player to jail without passing GO
	SpaceKindGoToJail SpaceKind = "go_to_jail"

	// SpaceKindFreeParking pays out the accumulated pool
	SpaceKindFreeParking SpaceKind = "free_parking"

	// SpaceKindGo is the starting space
	SpaceKindGo SpaceKind = "go"

	// SpaceKindNeutral has no effect when landed on
	SpaceKindNeutral SpaceKind = "neutral"
)

// SpaceDefinition is an immutable board space record, loaded once at startup
type SpaceDefinition struct {
	// Position is the 1-indexed board position, 1..40
	Position int `yaml:"position"`

	// Name is the printable space name
	Name string `yaml:"name"`

	// Kind selects the landing behavior
	Kind SpaceKind `yaml:"kind"`

	// Group is the color group for streets, empty otherwise
	Group string `yaml:"group,omitempty"`

	// Price is the purchase price for purchasable spaces
	Price int `yaml:"price,omitempty"`

	// Rent is the base rent for streets and stations
	Rent int `yaml:"rent,omitempty"`

	// HouseRents is the street rent schedule for 1..4 houses and a hotel
	HouseRents []int `yaml:"house_rents,omitempty"`

	// HouseCost is the per-house (and per-hotel) build cost for streets
	HouseCost int `yaml:"house_cost,omitempty"`

	// TaxAmount is the charge for tax spaces
	TaxAmount int `yaml:"tax_amount,omitempty"`

	// Deck names the deck drawn from on card-draw spaces
	Deck DeckKind `yaml:"deck,omitempty"`
}

// Purchasable reports whether the space can be owned
func (s *SpaceDefinition) Purchasable() bool {
	switch s.Kind {
	case SpaceKindStreet, SpaceKindStation, SpaceKindUtility:
		return true
	default:
		return false
	}
}
