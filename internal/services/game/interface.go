package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/magnate-game/magnate/internal/services/game Service

import "context"

// Service defines the command surface of the rules engine. One logical
// actor acts per invocation; the presentation layer issues these commands
// and reads back snapshots.
type Service interface {
	// CreateGame starts a new game session
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// Roll performs the current player's dice roll, including jail
	// resolution, movement, and space resolution
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Buy accepts the pending purchase decision
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)

	// Decline refuses the pending purchase, opening an auction when
	// another qualified bidder exists
	Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error)

	// Bid places an auction bid for the currently rotated bidder
	Bid(ctx context.Context, input *BidInput) error

	// PassAuction withdraws the currently rotated bidder
	PassAuction(ctx context.Context, input *PassAuctionInput) error

	// BuildHouse adds a house to one of the player's streets
	BuildHouse(ctx context.Context, input *DevelopInput) (*DevelopOutput, error)

	// BuildHotel upgrades a four-house street to a hotel
	BuildHotel(ctx context.Context, input *DevelopInput) (*DevelopOutput, error)

	// SellHouse returns a house to the bank at half cost
	SellHouse(ctx context.Context, input *DevelopInput) (*DevelopOutput, error)

	// SellHotel downgrades a hotel to four houses at half cost
	SellHotel(ctx context.Context, input *DevelopInput) (*DevelopOutput, error)

	// Mortgage mortgages a house-free property
	Mortgage(ctx context.Context, input *DevelopInput) (*DevelopOutput, error)

	// Unmortgage lifts a mortgage at value plus interest
	Unmortgage(ctx context.Context, input *DevelopInput) (*DevelopOutput, error)

	// ChooseJailOption records the jailed player's choice for their
	// next roll
	ChooseJailOption(ctx context.Context, input *ChooseJailOptionInput) error

	// ExitGame removes a player voluntarily, recording net worth
	ExitGame(ctx context.Context, input *ExitGameInput) (*ExitGameOutput, error)

	// SetMotion flags or clears the external animation lock
	SetMotion(ctx context.Context, input *SetMotionInput) error

	// Tick advances time-based behavior; the driving loop calls this
	// every iteration
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// Snapshot returns a read-only copy of the observable state
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)
}
