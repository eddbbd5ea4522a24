package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/magnate-game/magnate/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// Used when no Redis address is configured.
type memoryRepository struct {
	mu    sync.Mutex
	feeds map[string][]*models.Event
}

// NewMemory creates a new in-memory feed repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		feeds: make(map[string][]*models.Event),
	}
}

// Append adds an event to the end of the game's feed
func (r *memoryRepository) Append(ctx context.Context, input *AppendInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}
	if input.Event.GameID == "" {
		return errors.New("event game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *input.Event
	r.feeds[input.Event.GameID] = append(r.feeds[input.Event.GameID], &copied)
	return nil
}

// List reads a slice of the game's feed, oldest first
func (r *memoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.feeds[input.GameID]
	if input.Offset >= len(stored) {
		return &ListOutput{Events: []*models.Event{}}, nil
	}

	stored = stored[input.Offset:]
	if input.Count > 0 && input.Count < len(stored) {
		stored = stored[:input.Count]
	}

	events := make([]*models.Event, 0, len(stored))
	for _, event := range stored {
		copied := *event
		events = append(events, &copied)
	}
	return &ListOutput{Events: events}, nil
}

// Clear removes the game's feed
func (r *memoryRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.feeds, input.GameID)
	return nil
}
