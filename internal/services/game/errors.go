package game

// Error is a sentinel error type for game operations
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        Error = "config cannot be nil"
	ErrNilCatalog       Error = "catalog cannot be nil"
	ErrNilDecks         Error = "decks cannot be nil"
	ErrNilLedger        Error = "ledger cannot be nil"
	ErrNilProperty      Error = "property service cannot be nil"
	ErrNilAuction       Error = "auction service cannot be nil"
	ErrNilBankruptcy    Error = "bankruptcy service cannot be nil"
	ErrNilRoller        Error = "dice roller cannot be nil"
	ErrNilClock         Error = "clock cannot be nil"
	ErrNilUUIDGenerator Error = "UUID generator cannot be nil"
	ErrNilFeed          Error = "feed repository cannot be nil"
	ErrNilInput         Error = "input cannot be nil"

	ErrNoSession      Error = "no game session exists"
	ErrGameInProgress Error = "a game is already in progress"
	ErrGameOver       Error = "the game is over"
	ErrWrongPhase     Error = "operation not valid in the current phase"
	ErrNotYourTurn    Error = "not this player's turn"
	ErrUnknownPlayer  Error = "player not in game"
	ErrTooFewPlayers  Error = "at least two players required"
	ErrTooManyPlayers Error = "too many players"
	ErrMotionPending  Error = "movement still in progress"

	ErrNotJailed          Error = "player is not in jail"
	ErrNoJailCard         Error = "player holds no jail-free card"
	ErrInvalidJailChoice  Error = "unknown jail choice"
	ErrAuctionInProgress  Error = "an auction is in progress"
	ErrNoPendingPurchase  Error = "no purchase decision pending"
)
