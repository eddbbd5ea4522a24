// Package board supplies the immutable 40-space catalog the engine plays on.
package board

import (
	"fmt"

	"github.com/magnate-game/magnate/internal/models"
)

// Catalog is the immutable list of space definitions, loaded once at startup
type Catalog struct {
	spaces []*models.SpaceDefinition
	byPos  map[int]*models.SpaceDefinition
}

// NewCatalog validates the given spaces and wraps them as a catalog
func NewCatalog(spaces []*models.SpaceDefinition) (*Catalog, error) {
	if len(spaces) != models.BoardSize {
		return nil, fmt.Errorf("board must have exactly %d spaces, got %d", models.BoardSize, len(spaces))
	}

	byPos := make(map[int]*models.SpaceDefinition, len(spaces))
	for _, s := range spaces {
		if s.Position < 1 || s.Position > models.BoardSize {
			return nil, fmt.Errorf("space %q has position %d out of range", s.Name, s.Position)
		}
		if _, dup := byPos[s.Position]; dup {
			return nil, fmt.Errorf("duplicate position %d", s.Position)
		}
		if err := validateSpace(s); err != nil {
			return nil, err
		}
		byPos[s.Position] = s
	}

	// A one-street color group breaks monopoly doubling and even
	// development; groups must be whole
	groupSizes := make(map[string]int)
	for _, s := range spaces {
		if s.Kind == models.SpaceKindStreet {
			groupSizes[s.Group]++
		}
	}
	for group, size := range groupSizes {
		if size < 2 {
			return nil, fmt.Errorf("group %q has only one street", group)
		}
	}

	return &Catalog{spaces: spaces, byPos: byPos}, nil
}

func validateSpace(s *models.SpaceDefinition) error {
	switch s.Kind {
	case models.SpaceKindStreet:
		if s.Price <= 0 || s.Group == "" || s.HouseCost <= 0 {
			return fmt.Errorf("street %q needs a price, group and house cost", s.Name)
		}
		if len(s.HouseRents) != models.HotelHouseCount {
			return fmt.Errorf("street %q needs a %d-entry rent schedule", s.Name, models.HotelHouseCount)
		}
	case models.SpaceKindStation, models.SpaceKindUtility:
		if s.Price <= 0 {
			return fmt.Errorf("%s %q needs a price", s.Kind, s.Name)
		}
	case models.SpaceKindTax:
		if s.TaxAmount <= 0 {
			return fmt.Errorf("tax space %q needs an amount", s.Name)
		}
	case models.SpaceKindCardDraw:
		if s.Deck != models.DeckPotLuck && s.Deck != models.DeckOpportunityKnocks {
			return fmt.Errorf("card space %q names unknown deck %q", s.Name, s.Deck)
		}
	case models.SpaceKindGo, models.SpaceKindJail, models.SpaceKindGoToJail,
		models.SpaceKindFreeParking, models.SpaceKindNeutral:
		// no extra fields
	default:
		return fmt.Errorf("space %q has unknown kind %q", s.Name, s.Kind)
	}
	return nil
}

// Space returns the definition at the given 1-indexed position
func (c *Catalog) Space(position int) *models.SpaceDefinition {
	return c.byPos[position]
}

// Spaces returns all definitions in board order
func (c *Catalog) Spaces() []*models.SpaceDefinition {
	return c.spaces
}

// GroupMembers returns every street in the given color group
func (c *Catalog) GroupMembers(group string) []*models.SpaceDefinition {
	var members []*models.SpaceDefinition
	for _, s := range c.spaces {
		if s.Kind == models.SpaceKindStreet && s.Group == group {
			members = append(members, s)
		}
	}
	return members
}

// Stations returns the positions of every station space
func (c *Catalog) Stations() []int {
	return c.positionsOfKind(models.SpaceKindStation)
}

// Utilities returns the positions of every utility space
func (c *Catalog) Utilities() []int {
	return c.positionsOfKind(models.SpaceKindUtility)
}

func (c *Catalog) positionsOfKind(kind models.SpaceKind) []int {
	var positions []int
	for _, s := range c.spaces {
		if s.Kind == kind {
			positions = append(positions, s.Position)
		}
	}
	return positions
}
