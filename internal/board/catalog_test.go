package board

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/magnate-game/magnate/internal/models"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestDefaultBoard() {
	catalog := Default()

	s.Len(catalog.Spaces(), models.BoardSize)
	s.Equal(models.SpaceKindGo, catalog.Space(1).Kind)
	s.Equal(models.SpaceKindJail, catalog.Space(11).Kind)
	s.Equal(models.SpaceKindFreeParking, catalog.Space(21).Kind)
	s.Equal(models.SpaceKindGoToJail, catalog.Space(31).Kind)

	s.Equal([]int{6, 16, 26, 36}, catalog.Stations())
	s.Equal([]int{13, 29}, catalog.Utilities())

	// Every group on the default board has at least two members
	groups := make(map[string]int)
	for _, space := range catalog.Spaces() {
		if space.Kind == models.SpaceKindStreet {
			groups[space.Group]++
		}
	}
	s.Len(groups, 8)
	for group, count := range groups {
		s.GreaterOrEqual(count, 2, "group %s", group)
	}
}

func (s *CatalogTestSuite) TestGroupMembers() {
	catalog := Default()

	members := catalog.GroupMembers("Brown")
	s.Require().Len(members, 2)
	s.Equal(2, members[0].Position)
	s.Equal(4, members[1].Position)

	s.Empty(catalog.GroupMembers("no-such-group"))
}

func (s *CatalogTestSuite) TestRejectsWrongSpaceCount() {
	_, err := NewCatalog(Default().Spaces()[:39])
	s.Require().Error(err)
}

func (s *CatalogTestSuite) TestRejectsDuplicatePosition() {
	spaces := make([]*models.SpaceDefinition, 0, models.BoardSize)
	for _, space := range Default().Spaces() {
		copied := *space
		spaces = append(spaces, &copied)
	}
	spaces[1].Position = 1

	_, err := NewCatalog(spaces)
	s.Require().Error(err)
}

func (s *CatalogTestSuite) TestRejectsStreetWithoutRentSchedule() {
	spaces := make([]*models.SpaceDefinition, 0, models.BoardSize)
	for _, space := range Default().Spaces() {
		copied := *space
		spaces = append(spaces, &copied)
	}
	spaces[1].HouseRents = []int{10, 30}

	_, err := NewCatalog(spaces)
	s.Require().Error(err)
}

func (s *CatalogTestSuite) TestRejectsSingleStreetGroup() {
	spaces := make([]*models.SpaceDefinition, 0, models.BoardSize)
	for _, space := range Default().Spaces() {
		copied := *space
		spaces = append(spaces, &copied)
	}

	// Moving one Brown street into its own group leaves two broken groups
	spaces[1].Group = "Lonely"

	_, err := NewCatalog(spaces)
	s.Require().Error(err)
}

func (s *CatalogTestSuite) TestRejectsCardSpaceWithUnknownDeck() {
	spaces := make([]*models.SpaceDefinition, 0, models.BoardSize)
	for _, space := range Default().Spaces() {
		copied := *space
		spaces = append(spaces, &copied)
	}
	spaces[2].Deck = "mystery"

	_, err := NewCatalog(spaces)
	s.Require().Error(err)
}

func (s *CatalogTestSuite) TestLoadFromYAML() {
	path := filepath.Join(s.T().TempDir(), "board.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(boardYAML()), 0o644))

	catalog, err := Load(path)
	s.Require().NoError(err)
	s.Len(catalog.Spaces(), models.BoardSize)
	s.Equal("First Street", catalog.Space(2).Name)
	s.Equal(60, catalog.Space(2).Price)
	s.Equal(models.DeckPotLuck, catalog.Space(3).Deck)
}

func (s *CatalogTestSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.Require().Error(err)
}

func (s *CatalogTestSuite) TestLoadInvalidBoard() {
	path := filepath.Join(s.T().TempDir(), "board.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("spaces:\n  - position: 1\n    name: Go\n    kind: go\n"), 0o644))

	_, err := Load(path)
	s.Require().Error(err)
}

// boardYAML renders the default board as a loader document, with one
// renamed street so the test can tell the sources apart
func boardYAML() string {
	out := "spaces:\n"
	for _, space := range Default().Spaces() {
		name := space.Name
		if space.Position == 2 {
			name = "First Street"
		}
		out += "  - position: " + itoa(space.Position) + "\n"
		out += "    name: \"" + name + "\"\n"
		out += "    kind: " + string(space.Kind) + "\n"
		if space.Group != "" {
			out += "    group: \"" + space.Group + "\"\n"
		}
		if space.Price != 0 {
			out += "    price: " + itoa(space.Price) + "\n"
		}
		if space.Rent != 0 {
			out += "    rent: " + itoa(space.Rent) + "\n"
		}
		if len(space.HouseRents) > 0 {
			out += "    house_rents: ["
			for i, r := range space.HouseRents {
				if i > 0 {
					out += ", "
				}
				out += itoa(r)
			}
			out += "]\n"
		}
		if space.HouseCost != 0 {
			out += "    house_cost: " + itoa(space.HouseCost) + "\n"
		}
		if space.TaxAmount != 0 {
			out += "    tax_amount: " + itoa(space.TaxAmount) + "\n"
		}
		if space.Deck != "" {
			out += "    deck: " + string(space.Deck) + "\n"
		}
	}
	return out
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
