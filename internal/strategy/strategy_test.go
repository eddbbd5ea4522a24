package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/magnate-game/magnate/internal/board"
	diceMocks "github.com/magnate-game/magnate/internal/dice/mocks"
	"github.com/magnate-game/magnate/internal/models"
)

type SimpleStrategyTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	catalog    *board.Catalog
	strategy   *Simple
}

func (s *SimpleStrategyTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.catalog = board.Default()
	s.strategy = NewSimple(&SimpleConfig{
		Catalog: s.catalog,
		Roller:  s.mockRoller,
	})
}

func (s *SimpleStrategyTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSimpleStrategyTestSuite(t *testing.T) {
	suite.Run(t, new(SimpleStrategyTestSuite))
}

func holdings(positions ...int) []*models.PropertyState {
	out := make([]*models.PropertyState, 0, len(positions))
	for _, pos := range positions {
		out = append(out, &models.PropertyState{Position: pos, OwnerID: "alice"})
	}
	return out
}

func (s *SimpleStrategyTestSuite) TestValueBareStreet() {
	space := s.catalog.Space(22)

	s.InDelta(220.0, s.strategy.Value(space, nil), 0.001)
}

func (s *SimpleStrategyTestSuite) TestValueStreetWithGroupmate() {
	// One of three Red streets held: 220 x (1 + 0.3/3)
	space := s.catalog.Space(22)

	s.InDelta(242.0, s.strategy.Value(space, holdings(24)), 0.001)
}

func (s *SimpleStrategyTestSuite) TestValueStationScalesWithHoldings() {
	space := s.catalog.Space(6)

	s.InDelta(200.0, s.strategy.Value(space, nil), 0.001)
	s.InDelta(300.0, s.strategy.Value(space, holdings(16, 26)), 0.001)
}

func (s *SimpleStrategyTestSuite) TestValueUtilityPair() {
	space := s.catalog.Space(13)

	s.InDelta(150.0, s.strategy.Value(space, nil), 0.001)
	s.InDelta(225.0, s.strategy.Value(space, holdings(29)), 0.001)
}

func (s *SimpleStrategyTestSuite) TestShouldBuy() {
	space := s.catalog.Space(2)

	s.True(s.strategy.ShouldBuy(space, 1500, nil))
	s.False(s.strategy.ShouldBuy(space, 59, nil))
}

func (s *SimpleStrategyTestSuite) TestAuctionBidBumpsOverMinimum() {
	// The Old Creek values at 60, so the cap is 66; headroom 36 gives a
	// bump die of 7
	s.mockRoller.EXPECT().Roll(7).Return(5)

	bid, ok := s.strategy.AuctionBid(s.catalog.Space(2), 0, 30, 1500, nil)
	s.True(ok)
	s.Equal(35, bid)
}

func (s *SimpleStrategyTestSuite) TestAuctionBidBumpCapped() {
	// Turing Heights values at 400, cap 440, headroom 240: the bump die
	// never exceeds 40
	s.mockRoller.EXPECT().Roll(40).Return(40)

	bid, ok := s.strategy.AuctionBid(s.catalog.Space(40), 0, 200, 1500, nil)
	s.True(ok)
	s.Equal(240, bid)
}

func (s *SimpleStrategyTestSuite) TestAuctionBidPassesAboveCap() {
	_, ok := s.strategy.AuctionBid(s.catalog.Space(2), 0, 70, 1500, nil)
	s.False(ok)
}

func (s *SimpleStrategyTestSuite) TestAuctionBidPassesWithoutCash() {
	_, ok := s.strategy.AuctionBid(s.catalog.Space(2), 0, 30, 20, nil)
	s.False(ok)
}

func (s *SimpleStrategyTestSuite) TestAuctionBidLimitedByCash() {
	// 70% of 50 is 35, just above the minimum: no headroom, no bump
	bid, ok := s.strategy.AuctionBid(s.catalog.Space(2), 0, 34, 50, nil)
	s.True(ok)
	s.Equal(34, bid)
}

func (s *SimpleStrategyTestSuite) TestJailChoiceLadder() {
	withCard := &models.Player{Cash: 0, JailFreeCards: 1}
	s.Equal(models.JailChoiceUseCard, s.strategy.JailChoice(withCard))

	flush := &models.Player{Cash: 100}
	s.Equal(models.JailChoicePay, s.strategy.JailChoice(flush))

	broke := &models.Player{Cash: 99}
	s.Equal(models.JailChoiceRoll, s.strategy.JailChoice(broke))
}

func (s *SimpleStrategyTestSuite) TestDevelopmentActionPicksLeastDeveloped() {
	owned := holdings(2, 4)
	owned[0].Houses = 1

	pos, ok := s.strategy.DevelopmentAction(owned, 200)
	s.True(ok)
	s.Equal(4, pos)
}

func (s *SimpleStrategyTestSuite) TestDevelopmentActionNeedsHeadroom() {
	// Brown houses cost 50; the strategy wants triple that in cash
	_, ok := s.strategy.DevelopmentAction(holdings(2, 4), 149)
	s.False(ok)
}

func (s *SimpleStrategyTestSuite) TestDevelopmentActionNeedsFullGroup() {
	_, ok := s.strategy.DevelopmentAction(holdings(2), 1500)
	s.False(ok)
}

func (s *SimpleStrategyTestSuite) TestDevelopmentActionSkipsHotelsAndMortgages() {
	owned := holdings(2, 4)
	owned[0].Houses = models.HotelHouseCount
	owned[1].Mortgaged = true

	_, ok := s.strategy.DevelopmentAction(owned, 1500)
	s.False(ok)
}

type MoodStrategyTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	catalog    *board.Catalog
	strategy   *Mood
}

func (s *MoodStrategyTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.catalog = board.Default()
	s.strategy = NewMood(NewSimple(&SimpleConfig{
		Catalog: s.catalog,
		Roller:  s.mockRoller,
	}))
}

func (s *MoodStrategyTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMoodStrategyTestSuite(t *testing.T) {
	suite.Run(t, new(MoodStrategyTestSuite))
}

func (s *MoodStrategyTestSuite) TestModifierClampsBothWays() {
	for i := 0; i < 10; i++ {
		s.strategy.ReactTo(false)
	}
	s.InDelta(0.3, s.strategy.Modifier(), 0.001)

	for i := 0; i < 20; i++ {
		s.strategy.ReactTo(true)
	}
	s.InDelta(-0.3, s.strategy.Modifier(), 0.001)
}

func (s *MoodStrategyTestSuite) TestCalmMoodRefusesToBuy() {
	for i := 0; i < 6; i++ {
		s.strategy.ReactTo(true)
	}

	// At mood -0.3 the perceived value drops to 40% of list price
	s.False(s.strategy.ShouldBuy(s.catalog.Space(2), 1500, nil))
}

func (s *MoodStrategyTestSuite) TestAgitatedMoodStillBuys() {
	for i := 0; i < 6; i++ {
		s.strategy.ReactTo(false)
	}

	s.True(s.strategy.ShouldBuy(s.catalog.Space(2), 1500, nil))
}

func (s *MoodStrategyTestSuite) TestNeutralMoodMatchesBase() {
	s.True(s.strategy.ShouldBuy(s.catalog.Space(2), 1500, nil))
	s.False(s.strategy.ShouldBuy(s.catalog.Space(2), 59, nil))
}

func (s *MoodStrategyTestSuite) TestCalmMoodPassesAuction() {
	for i := 0; i < 6; i++ {
		s.strategy.ReactTo(true)
	}

	// The base strategy would bid, but the adjusted cap of 26 sits
	// below the minimum
	s.mockRoller.EXPECT().Roll(gomock.Any()).Return(1).AnyTimes()

	_, ok := s.strategy.AuctionBid(s.catalog.Space(2), 0, 30, 1500, nil)
	s.False(ok)
}

func (s *MoodStrategyTestSuite) TestNeutralMoodBidsLikeBase() {
	s.mockRoller.EXPECT().Roll(7).Return(3)

	bid, ok := s.strategy.AuctionBid(s.catalog.Space(2), 0, 30, 1500, nil)
	s.True(ok)
	s.Equal(33, bid)
}
