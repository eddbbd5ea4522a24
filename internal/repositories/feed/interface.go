package feed

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/magnate-game/magnate/internal/repositories/feed Repository

import "context"

// Repository defines the interface for the game event feed
type Repository interface {
	// Append adds an event to the end of a game's feed
	Append(ctx context.Context, input *AppendInput) error

	// List retrieves a slice of a game's feed, oldest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Clear removes a game's feed
	Clear(ctx context.Context, input *ClearInput) error
}
