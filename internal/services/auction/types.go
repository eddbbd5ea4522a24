package auction

import (
	"time"

	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/common/clock"
	"github.com/magnate-game/magnate/internal/common/uuid"
	"github.com/magnate-game/magnate/internal/models"
	"github.com/magnate-game/magnate/internal/services/ledger"
)

// Config holds configuration for the auction service
type Config struct {
	// Catalog is the immutable board
	Catalog *board.Catalog

	// Ledger settles the winning bid
	Ledger *ledger.Service

	// Clock drives the per-action timeout
	Clock clock.Clock

	// UUIDGenerator mints auction session IDs
	UUIDGenerator uuid.UUID

	// BidTimeout is how long the rotated bidder has to act; the timer
	// resets on every accepted bid or pass. Defaults to 30 seconds.
	BidTimeout time.Duration

	// BidIncrement is the step added to the minimum after each bid.
	// Defaults to 10.
	BidIncrement int
}

// StartInput contains parameters for opening an auction
type StartInput struct {
	// Position is the property under the hammer
	Position int

	// TriggerPlayerID is the player whose decline or shortfall caused
	// the auction; they may still bid if otherwise qualified
	TriggerPlayerID string
}

// StartOutput contains the result of opening an auction
type StartOutput struct {
	// Started is false when no other qualified bidder exists and the
	// property stays unsold
	Started bool

	// Auction is the opened session, nil when skipped
	Auction *models.AuctionSession
}

// Result describes a resolved auction
type Result struct {
	// Position is the auctioned property
	Position int

	// Sold indicates a high bidder won
	Sold bool

	// WinnerID and Amount describe the sale when Sold
	WinnerID string
	Amount   int
}
