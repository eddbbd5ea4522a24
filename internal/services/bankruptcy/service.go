// Package bankruptcy implements forced liquidation and player removal.
// When a payment exceeds a player's cash the engine first sells
// developments (cheapest groups first, evenly), then mortgages bare
// properties (cheapest first); only if the player is still insolvent is
// bankruptcy declared and the player flagged out of the rotation.
package bankruptcy

import (
	"sort"

	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/models"
	"github.com/magnate-game/magnate/internal/services/ledger"
	"github.com/magnate-game/magnate/internal/services/property"
)

// Error is a sentinel error type for bankruptcy operations
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig   Error = "config cannot be nil"
	ErrNilCatalog  Error = "catalog cannot be nil"
	ErrNilLedger   Error = "ledger cannot be nil"
	ErrNilProperty Error = "property service cannot be nil"
	ErrNilSession  Error = "session cannot be nil"
	ErrNilPlayer   Error = "player cannot be nil"
)

// Config holds configuration for the bankruptcy service
type Config struct {
	Catalog  *board.Catalog
	Ledger   *ledger.Service
	Property *property.Service
}

// Service performs liquidation and removal
type Service struct {
	catalog  *board.Catalog
	ledger   *ledger.Service
	property *property.Service
}

// New creates a new bankruptcy service
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
	if cfg.Property == nil {
		return nil, ErrNilProperty
	}

	return &Service{
		catalog:  cfg.Catalog,
		ledger:   cfg.Ledger,
		property: cfg.Property,
	}, nil
}

// NetWorth is cash plus list price of owned properties plus the build
// value of standing developments
func (s *Service) NetWorth(sess *models.Session, player *models.Player) int {
	total := player.Cash
	for _, state := range sess.OwnedBy(player.ID) {
		space := s.catalog.Space(state.Position)
		total += space.Price
		total += state.Houses * space.HouseCost
	}
	return total
}

// RaiseFunds liquidates until the player's cash reaches the target or
// nothing sellable remains. Developments go first, cheapest groups first
// and always evenly; then house-free properties are mortgaged, cheapest
// first. Reports whether the target was reached.
func (s *Service) RaiseFunds(sess *models.Session, player *models.Player, target int) (bool, error) {
	if sess == nil {
		return false, ErrNilSession
	}
	if player == nil {
		return false, ErrNilPlayer
	}

	for player.Cash < target {
		if !s.sellOneBuilding(sess, player) {
			break
		}
	}

	if player.Cash >= target {
		return true, nil
	}

	for _, state := range s.mortgageCandidates(sess, player) {
		if player.Cash >= target {
			break
		}
		if _, err := s.property.Mortgage(sess, player, state.Position); err != nil {
			return false, err
		}
	}

	return player.Cash >= target, nil
}

// Declare removes the player: remaining cash goes to the creditor (or
// the bank when the debt was owed to the bank or free parking), every
// owned property reverts to unowned with developments and mortgages
// cleared, and the status flips to bankrupt — all in one step, so no
// state ever shows a non-active owner.
func (s *Service) Declare(sess *models.Session, player *models.Player, creditor *models.Player) (int, error) {
	if sess == nil {
		return 0, ErrNilSession
	}
	if player == nil {
		return 0, ErrNilPlayer
	}

	var seized int
	var err error
	if creditor != nil {
		seized, err = s.ledger.SeizeTo(sess, player, creditor)
	} else {
		seized, err = s.ledger.Seize(sess, player)
	}
	if err != nil {
		return 0, err
	}

	s.clearAssets(sess, player)
	player.Status = models.PlayerStatusBankrupt
	return seized, nil
}

// Exit handles a voluntary departure: net worth is recorded for end-game
// reporting, assets revert to the bank's pool, and the player leaves the
// rotation
func (s *Service) Exit(sess *models.Session, player *models.Player) (int, error) {
	if sess == nil {
		return 0, ErrNilSession
	}
	if player == nil {
		return 0, ErrNilPlayer
	}

	worth := s.NetWorth(sess, player)
	player.ExitNetWorth = worth
	s.clearAssets(sess, player)
	player.Status = models.PlayerStatusExited
	return worth, nil
}

func (s *Service) clearAssets(sess *models.Session, player *models.Player) {
	for _, state := range sess.OwnedBy(player.ID) {
		state.OwnerID = ""
		state.Houses = 0
		state.Mortgaged = false
	}
}

// sellOneBuilding sells one house (or a hotel) from the cheapest
// developed group, picking the member with the most houses so the
// even-development rule keeps holding. Reports whether anything sold.
func (s *Service) sellOneBuilding(sess *models.Session, player *models.Player) bool {
	var developed []*models.PropertyState
	for _, state := range sess.OwnedBy(player.ID) {
		if state.Houses > 0 {
			developed = append(developed, state)
		}
	}
	if len(developed) == 0 {
		return false
	}

	sort.SliceStable(developed, func(i, j int) bool {
		si := s.catalog.Space(developed[i].Position)
		sj := s.catalog.Space(developed[j].Position)
		if si.HouseCost != sj.HouseCost {
			return si.HouseCost < sj.HouseCost
		}
		return developed[i].Houses > developed[j].Houses
	})

	for _, state := range developed {
		var err error
		if state.HasHotel() {
			_, err = s.property.SellHotel(sess, player, state.Position)
		} else {
			_, err = s.property.SellHouse(sess, player, state.Position)
		}
		if err == nil {
			return true
		}
	}
	return false
}

func (s *Service) mortgageCandidates(sess *models.Session, player *models.Player) []*models.PropertyState {
	var candidates []*models.PropertyState
	for _, state := range sess.OwnedBy(player.ID) {
		if !state.Mortgaged && state.Houses == 0 {
			candidates = append(candidates, state)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return s.catalog.Space(candidates[i].Position).Price < s.catalog.Space(candidates[j].Position).Price
	})
	return candidates
}
