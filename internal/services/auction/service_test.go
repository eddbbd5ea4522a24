package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/magnate-game/magnate/internal/common/clock/mocks"
	uuidMocks "github.com/magnate-game/magnate/internal/common/uuid/mocks"
	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/models"
	"github.com/magnate-game/magnate/internal/services/ledger"
)

type AuctionTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	service   *Service
	sess      *models.Session
	alice     *models.Player
	bob       *models.Player
	carol     *models.Player
	testTime  time.Time
}

func (s *AuctionTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.testTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	s.mockUUID.EXPECT().NewUUID().Return("test-auction-id").AnyTimes()

	service, err := New(&Config{
		Catalog:       board.Default(),
		Ledger:        ledger.New(),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = service

	s.alice = &models.Player{ID: "alice", Name: "Alice", Cash: 1500, Circuits: 1, Status: models.PlayerStatusActive}
	s.bob = &models.Player{ID: "bob", Name: "Bob", Cash: 1500, Circuits: 1, Status: models.PlayerStatusActive}
	s.carol = &models.Player{ID: "carol", Name: "Carol", Cash: 1500, Circuits: 1, Status: models.PlayerStatusActive}
	s.sess = &models.Session{
		ID:         "test-game-id",
		Players:    []*models.Player{s.alice, s.bob, s.carol},
		Properties: map[int]*models.PropertyState{22: {Position: 22}},
		Bank:       45500,
		Phase:      models.PhaseBuyDecision,
	}
}

func (s *AuctionTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuctionTestSuite(t *testing.T) {
	suite.Run(t, new(AuctionTestSuite))
}

func (s *AuctionTestSuite) start() *models.AuctionSession {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	out, err := s.service.Start(s.sess, &StartInput{Position: 22, TriggerPlayerID: "alice"})
	s.Require().NoError(err)
	s.Require().True(out.Started)
	return out.Auction
}

func (s *AuctionTestSuite) TestStart() {
	a := s.start()

	// Yue Fei Square lists at 220, so bidding opens at half
	s.Equal(110, a.MinimumBid)
	s.Equal([]string{"alice", "bob", "carol"}, a.BidderIDs)
	s.Equal(models.PhaseAuction, s.sess.Phase)
}

func (s *AuctionTestSuite) TestStartSkippedWithoutOtherQualifiedBidders() {
	s.bob.Cash = 10
	s.carol.Circuits = 0

	out, err := s.service.Start(s.sess, &StartInput{Position: 22, TriggerPlayerID: "alice"})
	s.Require().NoError(err)
	s.False(out.Started)
	s.Nil(s.sess.Auction)
	s.False(s.sess.Properties[22].Owned())
}

func (s *AuctionTestSuite) TestStartExcludesJailedPlayers() {
	s.bob.InJail = true
	a := s.start()

	s.Equal([]string{"alice", "carol"}, a.BidderIDs)
}

// Two bidders, A bids, B passes: the auction resolves immediately with A
// as owner at the bid amount
func (s *AuctionTestSuite) TestBidThenPassResolves() {
	s.carol.Status = models.PlayerStatusBankrupt
	s.start()

	s.Require().NoError(s.service.Bid(s.sess, "alice", 110))
	s.Require().NoError(s.service.Pass(s.sess, "bob"))

	result, err := s.service.CheckEnd(s.sess)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.True(result.Sold)
	s.Equal("alice", result.WinnerID)
	s.Equal(110, result.Amount)
	s.Equal("alice", s.sess.Properties[22].OwnerID)
	s.Equal(1390, s.alice.Cash)
	s.Nil(s.sess.Auction)
}

func (s *AuctionTestSuite) TestAllPassLeavesUnsold() {
	s.start()

	s.Require().NoError(s.service.Pass(s.sess, "alice"))
	s.Require().NoError(s.service.Pass(s.sess, "bob"))
	s.Require().NoError(s.service.Pass(s.sess, "carol"))

	result, err := s.service.CheckEnd(s.sess)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.False(result.Sold)
	s.False(s.sess.Properties[22].Owned())
	s.Nil(s.sess.Auction)
}

func (s *AuctionTestSuite) TestBidRaisesMinimumAndRotates() {
	a := s.start()

	s.Require().NoError(s.service.Bid(s.sess, "alice", 110))
	s.Equal(120, a.MinimumBid)
	s.Equal("bob", s.service.CurrentBidderID(s.sess))

	s.Require().NoError(s.service.Bid(s.sess, "bob", 150))
	s.Equal(160, a.MinimumBid)
	s.Equal("carol", s.service.CurrentBidderID(s.sess))
}

func (s *AuctionTestSuite) TestBidValidation() {
	s.start()

	s.Require().ErrorIs(s.service.Bid(s.sess, "bob", 110), ErrNotYourTurn)
	s.Require().ErrorIs(s.service.Bid(s.sess, "alice", 100), ErrBidTooLow)
	s.Require().ErrorIs(s.service.Bid(s.sess, "alice", 2000), ErrInsufficientBid)

	s.Require().NoError(s.service.Pass(s.sess, "alice"))
	s.Require().ErrorIs(s.service.Bid(s.sess, "alice", 110), ErrNotYourTurn)
}

func (s *AuctionTestSuite) TestRotationSkipsUnderfundedBidders() {
	s.start()

	// Bob cannot meet the raised minimum and is skipped in rotation
	s.bob.Cash = 115
	s.Require().NoError(s.service.Bid(s.sess, "alice", 120))
	s.Equal("carol", s.service.CurrentBidderID(s.sess))
}

func (s *AuctionTestSuite) TestTimeoutResolvesWithHighBid() {
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	service, err := New(&Config{
		Catalog:       board.Default(),
		Ledger:        ledger.New(),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = service

	s.mockClock.EXPECT().Now().Return(s.testTime).Times(2) // start + bid
	out, err := s.service.Start(s.sess, &StartInput{Position: 22, TriggerPlayerID: "alice"})
	s.Require().NoError(err)
	s.Require().True(out.Started)
	s.Require().NoError(s.service.Bid(s.sess, "alice", 130))

	// No further action for longer than the bid timeout
	s.mockClock.EXPECT().Now().Return(s.testTime.Add(31 * time.Second)).AnyTimes()
	result, err := s.service.CheckEnd(s.sess)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.True(result.Sold)
	s.Equal("alice", result.WinnerID)
	s.Equal(130, result.Amount)
}

func (s *AuctionTestSuite) TestNoAuctionActions() {
	s.Require().ErrorIs(s.service.Bid(s.sess, "alice", 110), ErrNoAuction)
	s.Require().ErrorIs(s.service.Pass(s.sess, "alice"), ErrNoAuction)

	result, err := s.service.CheckEnd(s.sess)
	s.Require().NoError(err)
	s.Nil(result)
}
