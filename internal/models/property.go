package models

// HotelHouseCount is the house-count sentinel encoding "hotel built"
const HotelHouseCount = 5

// PropertyState is the mutable per-space ownership record. One exists for
// every purchasable space from game start.
//
// Invariant: Mortgaged and Houses > 0 are mutually exclusive.
type PropertyState struct {
	// Position is the board position this record belongs to
	Position int

	// OwnerID is the owning player's ID, empty when unowned
	OwnerID string

	// Houses is the development level, 0..5 (5 encodes a hotel)
	Houses int

	// Mortgaged indicates the property is mortgaged to the bank
	Mortgaged bool
}

// Owned reports whether any player owns the property
func (p *PropertyState) Owned() bool {
	return p.OwnerID != ""
}

// HasHotel reports whether the sentinel encodes a hotel
func (p *PropertyState) HasHotel() bool {
	return p.Houses == HotelHouseCount
}
