package auction

// Error is a sentinel error type for auction operations
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoAuction        Error = "no auction in progress"
	ErrAuctionRunning   Error = "an auction is already in progress"
	ErrNotYourTurn      Error = "it is not this player's turn to bid"
	ErrAlreadyPassed    Error = "player has already passed on this auction"
	ErrBidTooLow        Error = "bid is below the minimum"
	ErrInsufficientBid  Error = "bid exceeds player's cash"
	ErrNotPurchasable   Error = "space cannot be auctioned"
	ErrNilSession       Error = "session cannot be nil"
	ErrNilConfig        Error = "config cannot be nil"
	ErrNilCatalog       Error = "catalog cannot be nil"
	ErrNilLedger        Error = "ledger cannot be nil"
	ErrNilClock         Error = "clock cannot be nil"
	ErrNilUUIDGenerator Error = "UUID generator cannot be nil"
	ErrUnknownPlayer    Error = "player is not part of this auction"
)
