package strategy

import (
	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/dice"
	"github.com/magnate-game/magnate/internal/models"
)

// SimpleConfig holds configuration for the weighted strategy
type SimpleConfig struct {
	// Catalog is the immutable board
	Catalog *board.Catalog

	// Roller adds small random variation to bids
	Roller dice.Roller

	// JailFine is the fine the strategy weighs paying. Defaults to 50.
	JailFine int
}

// Simple is a weighted-arithmetic strategy: it values a property at list
// price scaled by how much of the related group, stations, or utilities
// it already holds, and acts whenever the value covers the cost.
type Simple struct {
	catalog  *board.Catalog
	roller   dice.Roller
	jailFine int
}

// NewSimple creates the weighted strategy
func NewSimple(cfg *SimpleConfig) *Simple {
	jailFine := cfg.JailFine
	if jailFine == 0 {
		jailFine = 50
	}
	return &Simple{
		catalog:  cfg.Catalog,
		roller:   cfg.Roller,
		jailFine: jailFine,
	}
}

// Value is the strategy's perceived worth of the space given its holdings
func (s *Simple) Value(space *models.SpaceDefinition, owned []*models.PropertyState) float64 {
	multiplier := 1.0

	switch space.Kind {
	case models.SpaceKindStreet:
		members := s.catalog.GroupMembers(space.Group)
		if len(members) > 0 {
			ownedInGroup := 0
			for _, state := range owned {
				def := s.catalog.Space(state.Position)
				if def.Kind == models.SpaceKindStreet && def.Group == space.Group {
					ownedInGroup++
				}
			}
			multiplier += 0.3 * float64(ownedInGroup) / float64(len(members))
		}

	case models.SpaceKindStation:
		multiplier += 0.25 * float64(s.countKind(owned, models.SpaceKindStation))

	case models.SpaceKindUtility:
		if s.countKind(owned, models.SpaceKindUtility) > 0 {
			multiplier += 0.5
		}
	}

	return float64(space.Price) * multiplier
}

// ShouldBuy buys whenever the perceived value covers the list price
func (s *Simple) ShouldBuy(space *models.SpaceDefinition, cash int, owned []*models.PropertyState) bool {
	if cash < space.Price {
		return false
	}
	return s.Value(space, owned) >= float64(space.Price)
}

// AuctionBid bids a small increment over the minimum, capped at 70% of
// cash and 110% of perceived value
func (s *Simple) AuctionBid(space *models.SpaceDefinition, currentBid, minimum, cash int, owned []*models.PropertyState) (int, bool) {
	if cash < minimum {
		return 0, false
	}

	maxBid := 0.7 * float64(cash)
	if cap := 1.1 * s.Value(space, owned); cap < maxBid {
		maxBid = cap
	}
	if float64(minimum) > maxBid {
		return 0, false
	}

	bid := minimum
	if headroom := int(maxBid) - minimum; headroom > 0 {
		bump := headroom / 5
		if bump > 40 {
			bump = 40
		}
		if bump > 0 && s.roller != nil {
			bid += s.roller.Roll(bump)
		}
	}
	if float64(bid) > maxBid {
		bid = int(maxBid)
	}
	return bid, true
}

// JailChoice spends a card first, pays when affordable, otherwise rolls
func (s *Simple) JailChoice(player *models.Player) models.JailChoice {
	if player.JailFreeCards > 0 {
		return models.JailChoiceUseCard
	}
	if player.Cash >= s.jailFine*2 {
		return models.JailChoicePay
	}
	return models.JailChoiceRoll
}

// DevelopmentAction builds on the least-developed street of a fully
// owned group, when cash comfortably covers the house
func (s *Simple) DevelopmentAction(owned []*models.PropertyState, cash int) (int, bool) {
	ownedAt := make(map[int]bool, len(owned))
	for _, state := range owned {
		ownedAt[state.Position] = true
	}

	best := -1
	bestHouses := 0
	for _, state := range owned {
		def := s.catalog.Space(state.Position)
		if def.Kind != models.SpaceKindStreet || state.Mortgaged || state.HasHotel() {
			continue
		}

		fullGroup := true
		for _, member := range s.catalog.GroupMembers(def.Group) {
			if !ownedAt[member.Position] {
				fullGroup = false
				break
			}
		}
		if !fullGroup || cash < def.HouseCost*3 {
			continue
		}

		if best == -1 || state.Houses < bestHouses {
			best = state.Position
			bestHouses = state.Houses
		}
	}

	if best == -1 {
		return 0, false
	}
	return best, true
}

func (s *Simple) countKind(owned []*models.PropertyState, kind models.SpaceKind) int {
	count := 0
	for _, state := range owned {
		if s.catalog.Space(state.Position).Kind == kind {
			count++
		}
	}
	return count
}
