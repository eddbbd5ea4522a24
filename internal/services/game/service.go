// Package game implements the turn state machine: dice resolution,
// movement, space dispatch, jail handling, circuit tracking, and
// end-of-game evaluation. It drives one player action per invocation and
// hands control to the auction and bankruptcy services as needed.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/common/clock"
	"github.com/magnate-game/magnate/internal/common/uuid"
	"github.com/magnate-game/magnate/internal/decks"
	"github.com/magnate-game/magnate/internal/dice"
	"github.com/magnate-game/magnate/internal/models"
	feedRepo "github.com/magnate-game/magnate/internal/repositories/feed"
	"github.com/magnate-game/magnate/internal/services/auction"
	"github.com/magnate-game/magnate/internal/services/bankruptcy"
	"github.com/magnate-game/magnate/internal/services/ledger"
	"github.com/magnate-game/magnate/internal/services/property"
	"github.com/magnate-game/magnate/internal/strategy"
)

const (
	defaultStartingCash = 1500
	defaultPassGoBonus  = 200
	defaultJailFine     = 50
	defaultBankLimit    = 50000
	defaultMaxJailTurns = 3
	defaultMaxPlayers   = 6
)

// service implements the Service interface
type service struct {
	catalog    *board.Catalog
	decks      *decks.Set
	ledger     *ledger.Service
	property   *property.Service
	auction    *auction.Service
	bankruptcy *bankruptcy.Service
	feed       feedRepo.Repository
	roller     dice.Roller
	clock      clock.Clock
	uuid       uuid.UUID

	startingCash int
	passGoBonus  int
	jailFine     int
	bankLimit    int
	maxJailTurns int
	maxPlayers   int

	jailPosition int

	sess           *models.Session
	providers      map[string]strategy.Provider
	advancePending bool
	turnClosed     bool
	lastRemovedID  string
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.Decks == nil {
		return nil, ErrNilDecks
	}
	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}
	if cfg.Property == nil {
		return nil, ErrNilProperty
	}
	if cfg.Auction == nil {
		return nil, ErrNilAuction
	}
	if cfg.Bankruptcy == nil {
		return nil, ErrNilBankruptcy
	}
	if cfg.Feed == nil {
		return nil, ErrNilFeed
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	jailPosition := 0
	for _, space := range cfg.Catalog.Spaces() {
		if space.Kind == models.SpaceKindJail {
			jailPosition = space.Position
			break
		}
	}
	if jailPosition == 0 {
		return nil, ErrNilCatalog
	}

	s := &service{
		catalog:      cfg.Catalog,
		decks:        cfg.Decks,
		ledger:       cfg.Ledger,
		property:     cfg.Property,
		auction:      cfg.Auction,
		bankruptcy:   cfg.Bankruptcy,
		feed:         cfg.Feed,
		roller:       cfg.Roller,
		clock:        cfg.Clock,
		uuid:         cfg.UUIDGenerator,
		startingCash: cfg.StartingCash,
		passGoBonus:  cfg.PassGoBonus,
		jailFine:     cfg.JailFine,
		bankLimit:    cfg.BankLimit,
		maxJailTurns: cfg.MaxJailTurns,
		maxPlayers:   cfg.MaxPlayers,
		jailPosition: jailPosition,
		providers:    make(map[string]strategy.Provider),
	}

	if s.startingCash == 0 {
		s.startingCash = defaultStartingCash
	}
	if s.passGoBonus == 0 {
		s.passGoBonus = defaultPassGoBonus
	}
	if s.jailFine == 0 {
		s.jailFine = defaultJailFine
	}
	if s.bankLimit == 0 {
		s.bankLimit = defaultBankLimit
	}
	if s.maxJailTurns == 0 {
		s.maxJailTurns = defaultMaxJailTurns
	}
	if s.maxPlayers == 0 {
		s.maxPlayers = defaultMaxPlayers
	}

	return s, nil
}

// CreateGame starts a new game session
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if s.sess != nil && s.sess.Phase != models.PhaseGameOver {
		return nil, ErrGameInProgress
	}
	if len(input.Players) < 2 {
		return nil, ErrTooFewPlayers
	}
	if len(input.Players) > s.maxPlayers {
		return nil, ErrTooManyPlayers
	}

	mode := input.Mode
	if mode == "" {
		mode = models.ModeFull
	}

	now := s.clock.Now()
	sess := &models.Session{
		ID:         s.uuid.NewUUID(),
		Properties: make(map[int]*models.PropertyState),
		Bank:       s.bankLimit,
		Phase:      models.PhaseRoll,
		Mode:       mode,
		TimeLimit:  input.TimeLimit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	providers := make(map[string]strategy.Provider)
	for _, seed := range input.Players {
		player := &models.Player{
			ID:       s.uuid.NewUUID(),
			Name:     seed.Name,
			Cash:     s.startingCash,
			Position: 1,
			Status:   models.PlayerStatusActive,
		}
		// Starting cash comes out of the bank so the session total is
		// exactly the bank limit from the first observable state
		sess.Bank -= s.startingCash
		sess.Players = append(sess.Players, player)
		if seed.Provider != nil {
			providers[player.ID] = seed.Provider
		}
	}

	for _, space := range s.catalog.Spaces() {
		if space.Purchasable() {
			sess.Properties[space.Position] = &models.PropertyState{Position: space.Position}
		}
	}

	s.sess = sess
	s.providers = providers
	s.advancePending = false
	s.lastRemovedID = ""

	return &CreateGameOutput{
		GameID:  sess.ID,
		Players: sess.Players,
	}, nil
}

// Roll performs the current player's dice roll, including jail
// resolution, movement, and space resolution
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, player, err := s.currentActor(input.PlayerID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != models.PhaseRoll {
		return nil, ErrWrongPhase
	}
	if sess.InMotion {
		return nil, ErrMotionPending
	}

	s.autoDevelop(ctx, player)
	s.turnClosed = false

	out := &RollOutput{}
	if player.InJail {
		proceed, err := s.resolveJail(ctx, player, out)
		if err != nil {
			return nil, err
		}
		if !proceed {
			out.Phase = sess.Phase
			return out, nil
		}
		out.Released = true
	}

	d1, d2 := s.roller.RollPair()
	sess.LastDice = [2]int{d1, d2}
	out.Dice = sess.LastDice
	out.Doubles = d1 == d2
	if out.Doubles {
		sess.DoublesCount++
	} else {
		sess.DoublesCount = 0
	}
	s.emit(ctx, models.EventRoll, player.ID, 0, 0,
		fmt.Sprintf("%s rolled %d and %d", player.Name, d1, d2))

	if sess.DoublesCount >= 3 {
		s.emit(ctx, models.EventJail, player.ID, s.jailPosition, 0,
			fmt.Sprintf("%s rolled three doubles and goes to jail", player.Name))
		s.sendToJail(ctx, player)
		out.Jailed = true
		out.NewPosition = player.Position
		s.finishTurn(ctx)
		out.Phase = sess.Phase
		return out, nil
	}

	out.PassedGo = s.move(ctx, player, d1+d2)
	out.NewPosition = player.Position
	s.resolveSpace(ctx, player, d1+d2)

	// An automated actor may have closed the turn inside resolveSpace
	if sess.Phase == models.PhaseRoll && !s.turnClosed {
		s.finishTurn(ctx)
	}
	out.Phase = sess.Phase
	return out, nil
}

// Buy accepts the pending purchase decision. An unaffordable acceptance
// falls back to the auction path instead of erroring.
func (s *service) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, player, err := s.currentActor(input.PlayerID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != models.PhaseBuyDecision {
		return nil, ErrNoPendingPurchase
	}

	position := sess.PendingPosition
	price, err := s.property.Buy(sess, player, position)
	if err != nil {
		if errors.Is(err, property.ErrInsufficientFunds) {
			started, declineErr := s.declinePending(ctx, player)
			if declineErr != nil {
				return nil, declineErr
			}
			return &BuyOutput{AuctionStarted: started}, nil
		}
		return nil, err
	}

	s.emit(ctx, models.EventPurchase, player.ID, position, price,
		fmt.Sprintf("%s bought %s for %d", player.Name, s.catalog.Space(position).Name, price))
	s.finishTurn(ctx)
	return &BuyOutput{Bought: true, Price: price}, nil
}

// Decline refuses the pending purchase, opening an auction when another
// qualified bidder exists
func (s *service) Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, player, err := s.currentActor(input.PlayerID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != models.PhaseBuyDecision {
		return nil, ErrNoPendingPurchase
	}

	started, err := s.declinePending(ctx, player)
	if err != nil {
		return nil, err
	}
	return &DeclineOutput{AuctionStarted: started}, nil
}

// Bid places an auction bid for the currently rotated bidder
func (s *service) Bid(ctx context.Context, input *BidInput) error {
	if input == nil {
		return ErrNilInput
	}
	sess, err := s.activeSession()
	if err != nil {
		return err
	}

	if err := s.auction.Bid(sess, input.PlayerID, input.Amount); err != nil {
		return err
	}
	s.emit(ctx, models.EventBid, input.PlayerID, sess.Auction.Position, input.Amount,
		fmt.Sprintf("%s bid %d", s.playerName(input.PlayerID), input.Amount))
	s.runAutoAuction(ctx)
	return nil
}

// PassAuction withdraws the currently rotated bidder
func (s *service) PassAuction(ctx context.Context, input *PassAuctionInput) error {
	if input == nil {
		return ErrNilInput
	}
	sess, err := s.activeSession()
	if err != nil {
		return err
	}

	position := 0
	if sess.Auction != nil {
		position = sess.Auction.Position
	}
	if err := s.auction.Pass(sess, input.PlayerID); err != nil {
		return err
	}
	s.emit(ctx, models.EventPass, input.PlayerID, position, 0,
		fmt.Sprintf("%s passed", s.playerName(input.PlayerID)))
	s.runAutoAuction(ctx)
	return nil
}

// BuildHouse adds a house to one of the player's streets
func (s *service) BuildHouse(ctx context.Context, input *DevelopInput) (*DevelopOutput, error) {
	return s.develop(ctx, input, s.property.BuildHouse, models.EventDevelopment, "built a house on")
}

// BuildHotel upgrades a four-house street to a hotel
func (s *service) BuildHotel(ctx context.Context, input *DevelopInput) (*DevelopOutput, error) {
	return s.develop(ctx, input, s.property.BuildHotel, models.EventDevelopment, "built a hotel on")
}

// SellHouse returns a house to the bank at half cost
func (s *service) SellHouse(ctx context.Context, input *DevelopInput) (*DevelopOutput, error) {
	return s.develop(ctx, input, s.property.SellHouse, models.EventDevelopment, "sold a house on")
}

// SellHotel downgrades a hotel to four houses at half cost
func (s *service) SellHotel(ctx context.Context, input *DevelopInput) (*DevelopOutput, error) {
	return s.develop(ctx, input, s.property.SellHotel, models.EventDevelopment, "sold the hotel on")
}

// Mortgage mortgages a house-free property
func (s *service) Mortgage(ctx context.Context, input *DevelopInput) (*DevelopOutput, error) {
	return s.develop(ctx, input, s.property.Mortgage, models.EventMortgage, "mortgaged")
}

// Unmortgage lifts a mortgage at value plus interest
func (s *service) Unmortgage(ctx context.Context, input *DevelopInput) (*DevelopOutput, error) {
	return s.develop(ctx, input, s.property.Unmortgage, models.EventMortgage, "unmortgaged")
}

// ChooseJailOption records the current player's jail choice for their
// next roll. Only the player whose turn it is may set it; the pending
// choice mutates that player's roll and nobody else's.
func (s *service) ChooseJailOption(ctx context.Context, input *ChooseJailOptionInput) error {
	if input == nil {
		return ErrNilInput
	}
	sess, player, err := s.currentActor(input.PlayerID)
	if err != nil {
		return err
	}
	if !player.InJail {
		return ErrNotJailed
	}

	switch input.Choice {
	case models.JailChoiceUseCard:
		if player.JailFreeCards == 0 {
			return ErrNoJailCard
		}
	case models.JailChoicePay, models.JailChoiceRoll, models.JailChoiceStay:
	default:
		return ErrInvalidJailChoice
	}

	sess.PendingJailChoice = input.Choice
	return nil
}

// ExitGame removes a player voluntarily, recording net worth
func (s *service) ExitGame(ctx context.Context, input *ExitGameInput) (*ExitGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}

	player := sess.Player(input.PlayerID)
	if player == nil {
		return nil, ErrUnknownPlayer
	}
	if !player.Active() {
		return nil, ErrUnknownPlayer
	}

	worth, err := s.bankruptcy.Exit(sess, player)
	if err != nil {
		return nil, err
	}
	s.lastRemovedID = player.ID
	s.emit(ctx, models.EventPlayerExited, player.ID, 0, worth,
		fmt.Sprintf("%s left the game with net worth %d", player.Name, worth))

	if sess.CurrentPlayer() != nil && sess.CurrentPlayer().ID == player.ID {
		sess.Phase = models.PhaseRoll
		sess.PendingPosition = 0
		s.advanceTurn()
	}
	s.evaluateGameOver(ctx)

	return &ExitGameOutput{NetWorth: worth}, nil
}

// SetMotion flags or clears the external animation lock
func (s *service) SetMotion(ctx context.Context, input *SetMotionInput) error {
	if input == nil {
		return ErrNilInput
	}
	if s.sess == nil {
		return ErrNoSession
	}
	s.sess.InMotion = input.InMotion
	return nil
}

// Tick advances time-based behavior: deferred turn advancement, automated
// actors, auction timeouts, and the timed-mode clock
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	sess := s.sess
	if sess == nil {
		return nil, ErrNoSession
	}

	out := &TickOutput{}
	if sess.Phase == models.PhaseGameOver {
		out.GameOver = true
		out.WinnerIDs = sess.WinnerIDs
		return out, nil
	}
	if sess.InMotion {
		return out, nil
	}

	if s.advancePending {
		s.advancePending = false
		s.finishTurn(ctx)
	}

	switch {
	case sess.Auction != nil:
		s.runAutoAuction(ctx)
		out.AuctionResolved = sess.Auction == nil
	case sess.Phase == models.PhaseBuyDecision:
		player := sess.CurrentPlayer()
		if player != nil && s.providers[player.ID] != nil {
			s.autoBuyDecision(ctx, player)
		}
	}

	s.evaluateGameOver(ctx)
	if sess.Phase == models.PhaseGameOver {
		out.GameOver = true
		out.WinnerIDs = sess.WinnerIDs
	}
	return out, nil
}

// Snapshot returns a read-only copy of the observable state
func (s *service) Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	sess := s.sess
	if sess == nil {
		return nil, ErrNoSession
	}
	if input == nil {
		input = &SnapshotInput{}
	}

	out := &SnapshotOutput{
		GameID:      sess.ID,
		Phase:       sess.Phase,
		Mode:        sess.Mode,
		Bank:        sess.Bank,
		FreeParking: sess.FreeParking,
		WinnerIDs:   append([]string(nil), sess.WinnerIDs...),
		Properties:  make(map[int]*models.PropertyState, len(sess.Properties)),
	}
	if current := sess.CurrentPlayer(); current != nil {
		out.CurrentPlayerID = current.ID
	}
	for _, p := range sess.Players {
		copied := *p
		out.Players = append(out.Players, &copied)
	}
	for pos, state := range sess.Properties {
		copied := *state
		out.Properties[pos] = &copied
	}
	if sess.Auction != nil {
		copied := *sess.Auction
		out.Auction = &copied
	}

	feedOut, err := s.feed.List(ctx, &feedRepo.ListInput{
		GameID: sess.ID,
		Offset: input.FeedOffset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read event feed: %w", err)
	}
	out.Events = feedOut.Events

	return out, nil
}

// develop is the shared guard and event path for the six development
// operations. They are allowed any time outside auctions for the current
// player.
func (s *service) develop(ctx context.Context, input *DevelopInput,
	op func(*models.Session, *models.Player, int) (int, error),
	eventType models.EventType, verb string) (*DevelopOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, player, err := s.currentActor(input.PlayerID)
	if err != nil {
		return nil, err
	}
	if sess.Phase == models.PhaseAuction {
		return nil, ErrAuctionInProgress
	}

	amount, err := op(sess, player, input.Position)
	if err != nil {
		return nil, err
	}

	space := s.catalog.Space(input.Position)
	s.emit(ctx, eventType, player.ID, input.Position, amount,
		fmt.Sprintf("%s %s %s", player.Name, verb, space.Name))
	return &DevelopOutput{Amount: amount}, nil
}

func (s *service) activeSession() (*models.Session, error) {
	if s.sess == nil {
		return nil, ErrNoSession
	}
	if s.sess.Phase == models.PhaseGameOver {
		return nil, ErrGameOver
	}
	return s.sess, nil
}

func (s *service) currentActor(playerID string) (*models.Session, *models.Player, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, nil, err
	}
	player := sess.Player(playerID)
	if player == nil {
		return nil, nil, ErrUnknownPlayer
	}
	current := sess.CurrentPlayer()
	if current == nil || current.ID != playerID {
		return nil, nil, ErrNotYourTurn
	}
	if !player.Active() {
		return nil, nil, ErrUnknownPlayer
	}
	return sess, player, nil
}

func (s *service) playerName(playerID string) string {
	if s.sess == nil {
		return playerID
	}
	if p := s.sess.Player(playerID); p != nil {
		return p.Name
	}
	return playerID
}
