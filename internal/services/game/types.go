package game

import (
	"time"

	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/common/clock"
	"github.com/magnate-game/magnate/internal/common/uuid"
	"github.com/magnate-game/magnate/internal/decks"
	"github.com/magnate-game/magnate/internal/dice"
	"github.com/magnate-game/magnate/internal/models"
	feedRepo "github.com/magnate-game/magnate/internal/repositories/feed"
	"github.com/magnate-game/magnate/internal/services/auction"
	"github.com/magnate-game/magnate/internal/services/bankruptcy"
	"github.com/magnate-game/magnate/internal/services/ledger"
	"github.com/magnate-game/magnate/internal/services/property"
	"github.com/magnate-game/magnate/internal/strategy"
)

// Config holds configuration for the game service
type Config struct {
	// Component dependencies
	Catalog    *board.Catalog
	Decks      *decks.Set
	Ledger     *ledger.Service
	Property   *property.Service
	Auction    *auction.Service
	Bankruptcy *bankruptcy.Service

	// Repository dependencies
	Feed feedRepo.Repository

	// Service dependencies
	Roller        dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// StartingCash is each player's opening balance
	StartingCash int

	// PassGoBonus is paid on every completed circuit
	PassGoBonus int

	// JailFine is the jail release charge, paid into free parking
	JailFine int

	// BankLimit is the bank's opening balance and payout ceiling
	BankLimit int

	// MaxJailTurns is the forced-release threshold
	MaxJailTurns int

	// MaxPlayers bounds the player registry
	MaxPlayers int
}

// PlayerSeed describes one player joining a new game. A nil Provider
// means a human actor: the engine blocks on external commands for every
// decision instead of consulting a strategy.
type PlayerSeed struct {
	Name     string
	Provider strategy.Provider
}

// CreateGameInput holds the parameters for starting a game
type CreateGameInput struct {
	Players   []PlayerSeed
	Mode      models.GameMode
	TimeLimit time.Duration
}

// CreateGameOutput holds the created session identifier
type CreateGameOutput struct {
	GameID  string
	Players []*models.Player
}

// RollInput holds the parameters for a dice roll
type RollInput struct {
	PlayerID string
}

// RollOutput reports the roll and its immediate consequences
type RollOutput struct {
	Dice        [2]int
	Doubles     bool
	NewPosition int
	PassedGo    bool
	Jailed      bool
	Released    bool
	Phase       models.GamePhase
}

// BuyInput holds the parameters for accepting a pending purchase
type BuyInput struct {
	PlayerID string
}

// BuyOutput reports the outcome of a purchase attempt
type BuyOutput struct {
	Bought         bool
	Price          int
	AuctionStarted bool
}

// DeclineInput holds the parameters for declining a pending purchase
type DeclineInput struct {
	PlayerID string
}

// DeclineOutput reports whether the decline opened an auction
type DeclineOutput struct {
	AuctionStarted bool
}

// BidInput holds the parameters for an auction bid
type BidInput struct {
	PlayerID string
	Amount   int
}

// PassAuctionInput holds the parameters for an auction pass
type PassAuctionInput struct {
	PlayerID string
}

// DevelopInput holds the parameters for build/sell/mortgage operations
type DevelopInput struct {
	PlayerID string
	Position int
}

// DevelopOutput reports the money moved by a development operation
type DevelopOutput struct {
	Amount int
}

// ChooseJailOptionInput records the jail choice ahead of the next roll
type ChooseJailOptionInput struct {
	PlayerID string
	Choice   models.JailChoice
}

// ExitGameInput holds the parameters for a voluntary exit
type ExitGameInput struct {
	PlayerID string
}

// ExitGameOutput reports the departing player's recorded net worth
type ExitGameOutput struct {
	NetWorth int
}

// SetMotionInput flags an external animation in progress. While set, the
// engine defers turn advancement.
type SetMotionInput struct {
	InMotion bool
}

// TickInput drives time-based behavior: auction timeouts, automated
// actors awaiting their action, the timed-mode alarm, and deferred turn
// advancement
type TickInput struct{}

// TickOutput reports what the tick resolved
type TickOutput struct {
	AuctionResolved bool
	GameOver        bool
	WinnerIDs       []string
}

// SnapshotInput holds the parameters for a read-only state snapshot
type SnapshotInput struct {
	// FeedOffset skips the oldest feed entries
	FeedOffset int
}

// SnapshotOutput is a defensive copy of the observable game state
type SnapshotOutput struct {
	GameID          string
	Phase           models.GamePhase
	Mode            models.GameMode
	CurrentPlayerID string
	Players         []*models.Player
	Properties      map[int]*models.PropertyState
	Auction         *models.AuctionSession
	Bank            int
	FreeParking     int
	WinnerIDs       []string
	Events          []*models.Event
}
