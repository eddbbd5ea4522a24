package models

// PlayerStatus represents whether a player is still part of the game
type PlayerStatus string

const (
	// PlayerStatusActive indicates the player is still in the game
	PlayerStatusActive PlayerStatus = "active"

	// PlayerStatusBankrupt indicates the player was removed after failing a payment
	PlayerStatusBankrupt PlayerStatus = "bankrupt"

	// PlayerStatusExited indicates the player left the game voluntarily
	PlayerStatusExited PlayerStatus = "exited"
)

// JailChoice is a player's answer to the jail-resolution prompt
type JailChoice string

const (
	// JailChoiceUseCard spends a held get-out-of-jail-free card
	JailChoiceUseCard JailChoice = "use_card"

	// JailChoicePay pays the fixed fine into free parking
	JailChoicePay JailChoice = "pay"

	// JailChoiceRoll attempts to roll doubles for release
	JailChoiceRoll JailChoice = "roll"

	// JailChoiceStay waits out another turn in jail
	JailChoiceStay JailChoice = "stay"
)

// Player represents a participant in a game session.
// Players are never deleted; removal is a status change so the
// rotation cursor stays valid.
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Cash is the player's current cash balance
	Cash int

	// Position is the player's board space, 1..40
	Position int

	// InJail indicates the player is jailed (not just visiting)
	InJail bool

	// JailTurns counts consecutive failed jail turns
	JailTurns int

	// JailFreeCards is the number of held get-out-of-jail-free cards
	JailFreeCards int

	// Circuits is how many full laps of the board the player has completed.
	// A player may not buy property before completing their first lap.
	Circuits int

	// Status is active, bankrupt, or exited
	Status PlayerStatus

	// ExitNetWorth records net worth at the moment of a voluntary exit
	ExitNetWorth int
}

// Active reports whether the player still takes turns
func (p *Player) Active() bool {
	return p.Status == PlayerStatusActive
}
