// Package property implements the transaction engine for purchasable
// spaces: buying, developing, mortgaging, and rent calculation. Every
// operation either completes atomically or returns a decline reason with
// state untouched.
package property

import (
	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/models"
	"github.com/magnate-game/magnate/internal/services/ledger"
)

// Config holds configuration for the property service
type Config struct {
	// Catalog is the immutable board
	Catalog *board.Catalog

	// Ledger moves the money
	Ledger *ledger.Service
}

// Service applies property transactions to a session
type Service struct {
	catalog *board.Catalog
	ledger  *ledger.Service
}

// New creates a new property service
func New(cfg *Config) (*Service, error) {
	if cfg == nil || cfg.Catalog == nil {
		return nil, Error("config and catalog cannot be nil")
	}
	if cfg.Ledger == nil {
		return nil, Error("ledger cannot be nil")
	}

	return &Service{
		catalog: cfg.Catalog,
		ledger:  cfg.Ledger,
	}, nil
}

// Rent computes the rent owed for landing on the given space. Mortgaged
// properties charge nothing. Stations double per extra station owned,
// utilities multiply the dice sum, streets follow the house schedule with
// a doubled base rent on a complete, undeveloped group.
func (s *Service) Rent(sess *models.Session, position, diceSum int) int {
	space := s.catalog.Space(position)
	state := sess.Properties[position]
	if space == nil || state == nil || !state.Owned() || state.Mortgaged {
		return 0
	}

	switch space.Kind {
	case models.SpaceKindStation:
		owned := s.countOwnedOfKind(sess, state.OwnerID, models.SpaceKindStation)
		rent := space.Rent
		for i := 1; i < owned; i++ {
			rent *= 2
		}
		return rent

	case models.SpaceKindUtility:
		owned := s.countOwnedOfKind(sess, state.OwnerID, models.SpaceKindUtility)
		if owned > 1 {
			return diceSum * 10
		}
		return diceSum * 4

	case models.SpaceKindStreet:
		if state.Houses > 0 {
			idx := state.Houses - 1
			if idx >= len(space.HouseRents) {
				idx = len(space.HouseRents) - 1
			}
			return space.HouseRents[idx]
		}
		if s.OwnsFullGroup(sess, state.OwnerID, space.Group) {
			return space.Rent * 2
		}
		return space.Rent

	default:
		return 0
	}
}

// Buy sells the unowned space at the player's position list price. The
// buyer must be out of jail, past their first circuit, and solvent.
func (s *Service) Buy(sess *models.Session, player *models.Player, position int) (int, error) {
	if sess == nil {
		return 0, ErrNilSession
	}
	if player == nil {
		return 0, ErrNilPlayer
	}

	space := s.catalog.Space(position)
	state := sess.Properties[position]
	if space == nil || state == nil {
		return 0, ErrUnknownSpace
	}
	if !space.Purchasable() {
		return 0, ErrNotPurchasable
	}
	if state.Owned() {
		return 0, ErrAlreadyOwned
	}
	if state.Mortgaged {
		return 0, ErrMortgaged
	}
	if player.InJail {
		return 0, ErrJailedOwner
	}
	if player.Circuits < 1 {
		return 0, ErrCircuitRequired
	}
	if player.Cash < space.Price {
		return 0, ErrInsufficientFunds
	}

	if err := s.ledger.PayToBank(sess, player, space.Price); err != nil {
		return 0, err
	}
	state.OwnerID = player.ID
	return space.Price, nil
}

// BuildHouse adds one house to the street. The owner must hold the whole
// unmortgaged group, and the result must keep the group's house counts
// within one of each other.
func (s *Service) BuildHouse(sess *models.Session, player *models.Player, position int) (int, error) {
	space, state, err := s.ownedStreet(sess, player, position)
	if err != nil {
		return 0, err
	}
	if state.Houses >= models.HotelHouseCount-1 {
		return 0, ErrMaxDevelopment
	}
	if err := s.checkGroupDevelopable(sess, player.ID, space.Group); err != nil {
		return 0, err
	}
	if state.Houses+1-s.groupMinHouses(sess, space.Group) > 1 {
		return 0, ErrUnevenDevelopment
	}
	if player.Cash < space.HouseCost {
		return 0, ErrInsufficientFunds
	}

	if err := s.ledger.PayToBank(sess, player, space.HouseCost); err != nil {
		return 0, err
	}
	state.Houses++
	return space.HouseCost, nil
}

// BuildHotel upgrades a street carrying four houses to a hotel. Every
// group member must already hold four houses. The four houses conceptually
// return to the bank's supply; only the build cost is tracked.
func (s *Service) BuildHotel(sess *models.Session, player *models.Player, position int) (int, error) {
	space, state, err := s.ownedStreet(sess, player, position)
	if err != nil {
		return 0, err
	}
	if state.HasHotel() {
		return 0, ErrMaxDevelopment
	}
	if err := s.checkGroupDevelopable(sess, player.ID, space.Group); err != nil {
		return 0, err
	}
	for _, member := range s.catalog.GroupMembers(space.Group) {
		if sess.Properties[member.Position].Houses < models.HotelHouseCount-1 {
			return 0, ErrHotelRequiresHouses
		}
	}
	if player.Cash < space.HouseCost {
		return 0, ErrInsufficientFunds
	}

	if err := s.ledger.PayToBank(sess, player, space.HouseCost); err != nil {
		return 0, err
	}
	state.Houses = models.HotelHouseCount
	return space.HouseCost, nil
}

// SellHouse returns one house to the bank at half the build cost
func (s *Service) SellHouse(sess *models.Session, player *models.Player, position int) (int, error) {
	space, state, err := s.ownedStreet(sess, player, position)
	if err != nil {
		return 0, err
	}
	if state.Houses == 0 || state.HasHotel() {
		return 0, ErrNoHouses
	}
	if s.groupMaxHouses(sess, space.Group)-(state.Houses-1) > 1 {
		return 0, ErrUnevenDevelopment
	}

	refund := space.HouseCost / 2
	if err := s.ledger.PayFromBank(sess, player, refund); err != nil {
		return 0, err
	}
	state.Houses--
	return refund, nil
}

// SellHotel downgrades a hotel back to four houses at half the hotel's
// build cost
func (s *Service) SellHotel(sess *models.Session, player *models.Player, position int) (int, error) {
	space, state, err := s.ownedStreet(sess, player, position)
	if err != nil {
		return 0, err
	}
	if !state.HasHotel() {
		return 0, ErrNoHotel
	}

	refund := space.HouseCost / 2
	if err := s.ledger.PayFromBank(sess, player, refund); err != nil {
		return 0, err
	}
	state.Houses = models.HotelHouseCount - 1
	return refund, nil
}

// Mortgage pays the player half the list price. Requires zero houses.
func (s *Service) Mortgage(sess *models.Session, player *models.Player, position int) (int, error) {
	space, state, err := s.ownedSpace(sess, player, position)
	if err != nil {
		return 0, err
	}
	if state.Mortgaged {
		return 0, ErrMortgaged
	}
	if state.Houses > 0 {
		return 0, ErrHousesPresent
	}

	value := space.Price / 2
	if err := s.ledger.PayFromBank(sess, player, value); err != nil {
		return 0, err
	}
	state.Mortgaged = true
	return value, nil
}

// Unmortgage restores full usability at the mortgage value plus 10%
// interest
func (s *Service) Unmortgage(sess *models.Session, player *models.Player, position int) (int, error) {
	space, state, err := s.ownedSpace(sess, player, position)
	if err != nil {
		return 0, err
	}
	if !state.Mortgaged {
		return 0, ErrNotMortgaged
	}

	value := space.Price / 2
	cost := value + value/10
	if player.Cash < cost {
		return 0, ErrInsufficientFunds
	}

	if err := s.ledger.PayToBank(sess, player, cost); err != nil {
		return 0, err
	}
	state.Mortgaged = false
	return cost, nil
}

// OwnsFullGroup reports whether the player owns every street in the group
func (s *Service) OwnsFullGroup(sess *models.Session, playerID, group string) bool {
	members := s.catalog.GroupMembers(group)
	if len(members) == 0 {
		return false
	}
	for _, member := range members {
		state := sess.Properties[member.Position]
		if state == nil || state.OwnerID != playerID {
			return false
		}
	}
	return true
}

// HouseDifference reports max−min house counts across the group.
// The even-development invariant keeps this ≤ 1 at all times.
func (s *Service) HouseDifference(sess *models.Session, group string) int {
	return s.groupMaxHouses(sess, group) - s.groupMinHouses(sess, group)
}

func (s *Service) ownedSpace(sess *models.Session, player *models.Player, position int) (*models.SpaceDefinition, *models.PropertyState, error) {
	if sess == nil {
		return nil, nil, ErrNilSession
	}
	if player == nil {
		return nil, nil, ErrNilPlayer
	}
	space := s.catalog.Space(position)
	state := sess.Properties[position]
	if space == nil || state == nil {
		return nil, nil, ErrUnknownSpace
	}
	if state.OwnerID != player.ID {
		return nil, nil, ErrNotOwner
	}
	return space, state, nil
}

func (s *Service) ownedStreet(sess *models.Session, player *models.Player, position int) (*models.SpaceDefinition, *models.PropertyState, error) {
	space, state, err := s.ownedSpace(sess, player, position)
	if err != nil {
		return nil, nil, err
	}
	if space.Kind != models.SpaceKindStreet {
		return nil, nil, ErrNotStreet
	}
	if state.Mortgaged {
		return nil, nil, ErrMortgaged
	}
	return space, state, nil
}

func (s *Service) checkGroupDevelopable(sess *models.Session, playerID, group string) error {
	if !s.OwnsFullGroup(sess, playerID, group) {
		return ErrGroupIncomplete
	}
	for _, member := range s.catalog.GroupMembers(group) {
		if sess.Properties[member.Position].Mortgaged {
			return ErrGroupMemberMortgaged
		}
	}
	return nil
}

func (s *Service) groupMinHouses(sess *models.Session, group string) int {
	min := -1
	for _, member := range s.catalog.GroupMembers(group) {
		houses := sess.Properties[member.Position].Houses
		if min == -1 || houses < min {
			min = houses
		}
	}
	if min == -1 {
		return 0
	}
	return min
}

func (s *Service) groupMaxHouses(sess *models.Session, group string) int {
	max := 0
	for _, member := range s.catalog.GroupMembers(group) {
		if houses := sess.Properties[member.Position].Houses; houses > max {
			max = houses
		}
	}
	return max
}

func (s *Service) countOwnedOfKind(sess *models.Session, ownerID string, kind models.SpaceKind) int {
	count := 0
	for _, space := range s.catalog.Spaces() {
		if space.Kind != kind {
			continue
		}
		if state := sess.Properties[space.Position]; state != nil && state.OwnerID == ownerID {
			count++
		}
	}
	return count
}
