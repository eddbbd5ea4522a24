// Package auction runs the bidding protocol for declined or unaffordable
// properties: a rotation over eligible bidders, a minimum that climbs with
// every bid, a per-action timeout, and a single resolution that either
// sells to the high bidder or leaves the property unowned. While an
// auction is open it supersedes normal turn order.
package auction

import (
	"time"

	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/common/clock"
	"github.com/magnate-game/magnate/internal/common/uuid"
	"github.com/magnate-game/magnate/internal/models"
	"github.com/magnate-game/magnate/internal/services/ledger"
)

const (
	defaultBidTimeout   = 30 * time.Second
	defaultBidIncrement = 10
)

// Service runs auctions over a session
type Service struct {
	catalog      *board.Catalog
	ledger       *ledger.Service
	clock        clock.Clock
	uuid         uuid.UUID
	bidTimeout   time.Duration
	bidIncrement int
}

// New creates a new auction service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	timeout := cfg.BidTimeout
	if timeout == 0 {
		timeout = defaultBidTimeout
	}
	increment := cfg.BidIncrement
	if increment == 0 {
		increment = defaultBidIncrement
	}

	return &Service{
		catalog:      cfg.Catalog,
		ledger:       cfg.Ledger,
		clock:        cfg.Clock,
		uuid:         cfg.UUIDGenerator,
		bidTimeout:   timeout,
		bidIncrement: increment,
	}, nil
}

// Start opens an auction for the property at the given position. The
// auction is skipped, and the property stays unsold, when nobody besides
// the triggering player is active, out of jail, past their first circuit,
// and able to cover the starting bid of half the list price.
func (s *Service) Start(sess *models.Session, input *StartInput) (*StartOutput, error) {
	if sess == nil {
		return nil, ErrNilSession
	}
	if sess.Auction != nil && !sess.Auction.Completed {
		return nil, ErrAuctionRunning
	}

	space := s.catalog.Space(input.Position)
	if space == nil || !space.Purchasable() {
		return nil, ErrNotPurchasable
	}

	startingBid := space.Price / 2
	var bidderIDs []string
	othersQualified := false
	for _, p := range sess.Players {
		if !p.Active() || p.InJail || p.Circuits < 1 || p.Cash < startingBid {
			continue
		}
		bidderIDs = append(bidderIDs, p.ID)
		if p.ID != input.TriggerPlayerID {
			othersQualified = true
		}
	}

	if !othersQualified {
		return &StartOutput{Started: false}, nil
	}

	sess.Auction = &models.AuctionSession{
		ID:         s.uuid.NewUUID(),
		Position:   input.Position,
		BidderIDs:  bidderIDs,
		PassedIDs:  make(map[string]bool),
		MinimumBid: startingBid,
		StartedAt:  s.clock.Now(),
		Duration:   s.bidTimeout,
	}
	sess.Phase = models.PhaseAuction
	return &StartOutput{Started: true, Auction: sess.Auction}, nil
}

// Bid places a bid for the currently rotated player. An accepted bid
// becomes the new high bid, raises the minimum, advances the rotation,
// and resets the action timer.
func (s *Service) Bid(sess *models.Session, playerID string, amount int) error {
	a, player, err := s.actingBidder(sess, playerID)
	if err != nil {
		return err
	}
	if amount < a.MinimumBid {
		return ErrBidTooLow
	}
	if amount > player.Cash {
		return ErrInsufficientBid
	}

	a.HighBid = amount
	a.HighBidderID = playerID
	a.MinimumBid = amount + s.bidIncrement
	s.advanceRotation(sess, a)
	a.StartedAt = s.clock.Now()
	return nil
}

// Pass withdraws the currently rotated player from the auction
func (s *Service) Pass(sess *models.Session, playerID string) error {
	a, _, err := s.actingBidder(sess, playerID)
	if err != nil {
		return err
	}

	a.PassedIDs[playerID] = true
	s.advanceRotation(sess, a)
	a.StartedAt = s.clock.Now()
	return nil
}

// CheckEnd resolves the auction if it is due: one or zero eligible
// bidders remain, or the action timer has elapsed. It returns nil while
// the auction is still open. On resolution the winning bid is settled,
// ownership assigned, and the session discarded.
func (s *Service) CheckEnd(sess *models.Session) (*Result, error) {
	if sess == nil {
		return nil, ErrNilSession
	}
	a := sess.Auction
	if a == nil {
		return nil, nil
	}

	if !a.Completed {
		remaining := s.eligibleRemaining(sess, a)
		switch {
		case len(remaining) == 0:
			a.Completed = true
		case len(remaining) == 1 && a.HighBidderID != "":
			a.Completed = true
		case s.clock.Now().Sub(a.StartedAt) > a.Duration:
			a.Completed = true
		}
	}

	if !a.Completed {
		return nil, nil
	}

	result := &Result{Position: a.Position}
	if a.HighBidderID != "" {
		winner := sess.Player(a.HighBidderID)
		if winner != nil && winner.Cash >= a.HighBid {
			if err := s.ledger.PayToBank(sess, winner, a.HighBid); err != nil {
				return nil, err
			}
			sess.Properties[a.Position].OwnerID = winner.ID
			result.Sold = true
			result.WinnerID = winner.ID
			result.Amount = a.HighBid
		}
	}

	sess.Auction = nil
	return result, nil
}

// CurrentBidderID returns the player whose action is due, or empty when
// no auction is open
func (s *Service) CurrentBidderID(sess *models.Session) string {
	if sess == nil || sess.Auction == nil {
		return ""
	}
	return sess.Auction.CurrentBidderID()
}

func (s *Service) actingBidder(sess *models.Session, playerID string) (*models.AuctionSession, *models.Player, error) {
	if sess == nil {
		return nil, nil, ErrNilSession
	}
	a := sess.Auction
	if a == nil || a.Completed {
		return nil, nil, ErrNoAuction
	}

	player := sess.Player(playerID)
	if player == nil || !inAuction(a, playerID) {
		return nil, nil, ErrUnknownPlayer
	}
	if a.CurrentBidderID() != playerID {
		return nil, nil, ErrNotYourTurn
	}
	if a.HasPassed(playerID) {
		return nil, nil, ErrAlreadyPassed
	}
	return a, player, nil
}

// advanceRotation moves the cursor to the next bidder who has not passed
// and can still meet the minimum, wrapping. If no such bidder exists the
// auction is marked complete.
func (s *Service) advanceRotation(sess *models.Session, a *models.AuctionSession) {
	if len(a.BidderIDs) == 0 {
		a.Completed = true
		return
	}

	start := a.RotationIndex
	for i := 1; i <= len(a.BidderIDs); i++ {
		next := (start + i) % len(a.BidderIDs)
		id := a.BidderIDs[next]
		if a.HasPassed(id) {
			continue
		}
		if p := sess.Player(id); p == nil || p.Cash < a.MinimumBid {
			continue
		}
		a.RotationIndex = next
		return
	}
	a.Completed = true
}

func (s *Service) eligibleRemaining(sess *models.Session, a *models.AuctionSession) []string {
	var remaining []string
	for _, id := range a.BidderIDs {
		if a.HasPassed(id) {
			continue
		}
		p := sess.Player(id)
		if p == nil || !p.Active() || p.Cash < a.MinimumBid {
			continue
		}
		remaining = append(remaining, id)
	}
	return remaining
}

func inAuction(a *models.AuctionSession, playerID string) bool {
	for _, id := range a.BidderIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
