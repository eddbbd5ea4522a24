package models

import "time"

// GameMode selects the end-of-game rule
type GameMode string

const (
	// ModeFull plays until one active player remains
	ModeFull GameMode = "full"

	// ModeTimed ends on a time limit plus a fairness lap
	ModeTimed GameMode = "timed"
)

// GamePhase is the turn state machine's current state
type GamePhase string

const (
	// PhaseRoll waits for the current player to roll
	PhaseRoll GamePhase = "roll"

	// PhaseBuyDecision waits for the current player to buy or decline
	PhaseBuyDecision GamePhase = "buy_decision"

	// PhaseAuction hands control to the auction rotation
	PhaseAuction GamePhase = "auction"

	// PhaseGameOver is terminal
	PhaseGameOver GamePhase = "game_over"
)

// Session is the aggregate owning all mutable game state. It replaces the
// scattered registries of a naive design: every component mutates the game
// only through this value, under the single turn loop.
type Session struct {
	// ID is the unique identifier for the game session
	ID string

	// Players is the stable ordered registry; players are flagged, never removed
	Players []*Player

	// CurrentIndex is the rotation cursor into Players
	CurrentIndex int

	// Properties is the per-position ownership state for purchasable spaces
	Properties map[int]*PropertyState

	// Bank and FreeParking are the scalar counterparty balances
	Bank        int
	FreeParking int

	// Phase is the turn state machine state
	Phase GamePhase

	// Mode is full or timed
	Mode GameMode

	// DoublesCount counts consecutive doubles by the current player
	DoublesCount int

	// LastDice is the most recent roll
	LastDice [2]int

	// PendingPosition is the space awaiting a buy/decline decision
	// while Phase is PhaseBuyDecision
	PendingPosition int

	// PendingJailChoice is the jail option chosen ahead of the next roll
	PendingJailChoice JailChoice

	// Auction is the in-progress auction, nil outside PhaseAuction
	Auction *AuctionSession

	// InMotion defers turn advancement while an external animation runs
	InMotion bool

	// CreatedAt is when the session started
	CreatedAt time.Time

	// TimeLimit bounds a timed game; zero in full mode
	TimeLimit time.Duration

	// PausedFor accumulates externally reported pause time, excluded
	// from the timed-mode elapsed calculation
	PausedFor time.Duration

	// AlarmRaised is set once a timed game crosses its limit
	AlarmRaised bool

	// AlarmLaps records each active player's circuit count at the
	// moment the alarm was raised; the game concludes once every
	// active player has strictly exceeded their recorded count
	AlarmLaps map[string]int

	// WinnerIDs holds the winner, or the tie-set, once Phase is PhaseGameOver
	WinnerIDs []string

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time
}

// Player returns the player with the given ID, or nil
func (s *Session) Player(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is
func (s *Session) CurrentPlayer() *Player {
	if len(s.Players) == 0 {
		return nil
	}
	return s.Players[s.CurrentIndex%len(s.Players)]
}

// ActivePlayers returns the players still in the game, in rotation order
func (s *Session) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range s.Players {
		if p.Active() {
			active = append(active, p)
		}
	}
	return active
}

// OwnedBy returns the property states owned by the given player,
// in board order
func (s *Session) OwnedBy(playerID string) []*PropertyState {
	var owned []*PropertyState
	for pos := 1; pos <= BoardSize; pos++ {
		if st, ok := s.Properties[pos]; ok && st.OwnerID == playerID {
			owned = append(owned, st)
		}
	}
	return owned
}

// BoardSize is the number of spaces on the board
const BoardSize = 40
