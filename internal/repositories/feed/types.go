package feed

import "github.com/magnate-game/magnate/internal/models"

// AppendInput holds the parameters for appending an event
type AppendInput struct {
	Event *models.Event
}

// ListInput holds the parameters for reading a feed slice. Count of 0
// reads the whole feed; Offset skips the oldest entries.
type ListInput struct {
	GameID string
	Offset int
	Count  int
}

// ListOutput holds the events read, oldest first
type ListOutput struct {
	Events []*models.Event
}

// ClearInput holds the parameters for removing a feed
type ClearInput struct {
	GameID string
}
