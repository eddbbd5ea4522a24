package models

import "time"

// AuctionSession tracks one in-progress property auction. At most one
// exists per game session; it is discarded on resolution.
type AuctionSession struct {
	// ID is the unique identifier for the auction
	ID string

	// Position is the board position of the property under the hammer
	Position int

	// BidderIDs is the ordered rotation of players admitted to the auction
	BidderIDs []string

	// PassedIDs is the set of players who have passed
	PassedIDs map[string]bool

	// RotationIndex points into BidderIDs at the player whose action is due
	RotationIndex int

	// MinimumBid is the smallest acceptable next bid
	MinimumBid int

	// HighBid and HighBidderID track the current winning bid, if any
	HighBid      int
	HighBidderID string

	// StartedAt is reset on every accepted bid or pass; the auction
	// force-resolves when Duration elapses without an action
	StartedAt time.Time

	// Duration is the per-action timeout
	Duration time.Duration

	// Completed marks the auction resolved
	Completed bool
}

// CurrentBidderID returns the player whose bid or pass is due
func (a *AuctionSession) CurrentBidderID() string {
	if len(a.BidderIDs) == 0 {
		return ""
	}
	return a.BidderIDs[a.RotationIndex%len(a.BidderIDs)]
}

// HasPassed reports whether the player already passed on this auction
func (a *AuctionSession) HasPassed(playerID string) bool {
	return a.PassedIDs[playerID]
}
