package ledger

// Error is a sentinel error type for ledger operations
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientFunds Error = "player has insufficient funds"
	ErrBankDepleted      Error = "bank does not have sufficient funds"
	ErrNegativeAmount    Error = "transfer amount cannot be negative"
	ErrNilSession        Error = "session cannot be nil"
	ErrNilPlayer         Error = "player cannot be nil"
)
