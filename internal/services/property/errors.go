package property

// Error is a decline reason from a property operation. State is never
// changed when one of these is returned.
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotPurchasable        Error = "space cannot be owned"
	ErrAlreadyOwned          Error = "property is already owned"
	ErrNotOwner              Error = "player does not own this property"
	ErrInsufficientFunds     Error = "insufficient funds"
	ErrCircuitRequired       Error = "player must complete a circuit before buying"
	ErrMortgaged             Error = "property is mortgaged"
	ErrNotMortgaged          Error = "property is not mortgaged"
	ErrHousesPresent         Error = "property has houses or a hotel"
	ErrGroupIncomplete       Error = "player does not own the full color group"
	ErrGroupMemberMortgaged  Error = "a property in the color group is mortgaged"
	ErrUnevenDevelopment     Error = "houses must be built and sold evenly across the group"
	ErrMaxDevelopment        Error = "maximum development reached"
	ErrHotelRequiresHouses   Error = "every group member needs four houses before a hotel"
	ErrNoHouses              Error = "no houses to sell"
	ErrNoHotel               Error = "no hotel to sell"
	ErrNotStreet             Error = "houses can only be built on streets"
	ErrJailedOwner           Error = "player cannot buy property while in jail"
	ErrNilSession            Error = "session cannot be nil"
	ErrNilPlayer             Error = "player cannot be nil"
	ErrUnknownSpace          Error = "unknown board position"
)
