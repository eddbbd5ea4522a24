package game

import (
	"context"
	"fmt"

	"github.com/magnate-game/magnate/internal/models"
	feedRepo "github.com/magnate-game/magnate/internal/repositories/feed"
	"github.com/magnate-game/magnate/internal/services/auction"
	"github.com/magnate-game/magnate/internal/strategy"
)

// move advances the player by the given steps, wrapping at the board
// edge. A wrap completes a circuit and pays the GO bonus. Reports
// whether the player passed GO.
func (s *service) move(ctx context.Context, player *models.Player, steps int) bool {
	newPosition := player.Position + steps
	passed := false
	if newPosition > models.BoardSize {
		newPosition -= models.BoardSize
		passed = true
	}
	if newPosition < 1 || newPosition > models.BoardSize {
		s.emit(ctx, models.EventAnomaly, player.ID, newPosition, 0,
			fmt.Sprintf("position %d out of range, clamping", newPosition))
		newPosition = ((newPosition-1)%models.BoardSize+models.BoardSize)%models.BoardSize + 1
	}

	player.Position = newPosition
	s.emit(ctx, models.EventMove, player.ID, newPosition, 0,
		fmt.Sprintf("%s moved to %s", player.Name, s.catalog.Space(newPosition).Name))
	if passed {
		s.creditCircuit(ctx, player)
	}
	return passed
}

// moveBack retreats the player without any circuit or bonus accounting
func (s *service) moveBack(ctx context.Context, player *models.Player, spaces int) {
	newPosition := player.Position - spaces
	if newPosition < 1 {
		newPosition += models.BoardSize
	}
	player.Position = newPosition
	s.emit(ctx, models.EventMove, player.ID, newPosition, 0,
		fmt.Sprintf("%s moved back to %s", player.Name, s.catalog.Space(newPosition).Name))
}

// moveTo teleports the player to an absolute position. A target behind
// the current position means GO was passed; collectGo controls whether
// that pays out.
func (s *service) moveTo(ctx context.Context, player *models.Player, target int, collectGo bool) {
	passed := target < player.Position
	player.Position = target
	s.emit(ctx, models.EventMove, player.ID, target, 0,
		fmt.Sprintf("%s moved to %s", player.Name, s.catalog.Space(target).Name))
	if passed && collectGo {
		s.creditCircuit(ctx, player)
	}
}

func (s *service) creditCircuit(ctx context.Context, player *models.Player) {
	player.Circuits++
	s.emit(ctx, models.EventPassGo, player.ID, 1, s.passGoBonus,
		fmt.Sprintf("%s passed GO and collects %d", player.Name, s.passGoBonus))
	s.creditFromBank(ctx, player, s.passGoBonus)
}

// resolveSpace dispatches on the kind of the space the player landed on
func (s *service) resolveSpace(ctx context.Context, player *models.Player, diceSum int) {
	sess := s.sess
	space := s.catalog.Space(player.Position)
	if space == nil {
		s.emit(ctx, models.EventAnomaly, player.ID, player.Position, 0, "landed on undefined space")
		return
	}

	switch space.Kind {
	case models.SpaceKindTax:
		s.emit(ctx, models.EventTax, player.ID, space.Position, space.TaxAmount,
			fmt.Sprintf("%s owes %d %s", player.Name, space.TaxAmount, space.Name))
		s.chargeToBank(ctx, player, space.TaxAmount)

	case models.SpaceKindCardDraw:
		s.drawCard(ctx, player, space.Deck)

	case models.SpaceKindGoToJail:
		s.emit(ctx, models.EventJail, player.ID, s.jailPosition, 0,
			fmt.Sprintf("%s is sent to jail", player.Name))
		s.sendToJail(ctx, player)

	case models.SpaceKindFreeParking:
		amount, _ := s.ledger.CollectFreeParking(sess, player)
		if amount > 0 {
			s.emit(ctx, models.EventFreeParking, player.ID, space.Position, amount,
				fmt.Sprintf("%s collects %d from free parking", player.Name, amount))
			s.notifyMood(player.ID, true)
		}

	case models.SpaceKindStreet, models.SpaceKindStation, models.SpaceKindUtility:
		s.resolveProperty(ctx, player, space.Position, diceSum)
	}
}

func (s *service) resolveProperty(ctx context.Context, player *models.Player, position, diceSum int) {
	sess := s.sess
	state := sess.Properties[position]
	if state == nil {
		s.emit(ctx, models.EventAnomaly, player.ID, position, 0, "purchasable space has no state record")
		return
	}

	if !state.Owned() {
		// No purchases before the first completed circuit; the turn
		// proceeds silently
		if player.Circuits < 1 || state.Mortgaged {
			return
		}
		sess.Phase = models.PhaseBuyDecision
		sess.PendingPosition = position
		if s.providers[player.ID] != nil {
			s.autoBuyDecision(ctx, player)
		}
		return
	}

	if state.OwnerID == player.ID {
		return
	}

	owner := sess.Player(state.OwnerID)
	if owner == nil || !owner.Active() {
		s.emit(ctx, models.EventAnomaly, player.ID, position, 0, "owner no longer in game, reverting to unowned")
		state.OwnerID = ""
		state.Houses = 0
		state.Mortgaged = false
		return
	}
	if owner.InJail {
		return
	}

	rent := s.property.Rent(sess, position, diceSum)
	if rent == 0 {
		return
	}
	s.emit(ctx, models.EventRent, player.ID, position, rent,
		fmt.Sprintf("%s owes %s rent of %d", player.Name, owner.Name, rent))
	s.chargePlayer(ctx, player, owner, rent)
}

// resolveJail handles the jailed player's turn. It reports whether the
// player was released by card or fine and a normal roll should follow;
// every other outcome ends the turn internally.
func (s *service) resolveJail(ctx context.Context, player *models.Player, out *RollOutput) (bool, error) {
	sess := s.sess
	choice := sess.PendingJailChoice
	sess.PendingJailChoice = ""
	if choice == "" {
		if provider := s.providers[player.ID]; provider != nil {
			choice = provider.JailChoice(player)
		} else {
			choice = models.JailChoiceRoll
		}
	}
	if choice == models.JailChoiceUseCard && player.JailFreeCards == 0 {
		choice = models.JailChoiceRoll
	}

	switch choice {
	case models.JailChoiceUseCard:
		player.JailFreeCards--
		if err := s.decks.ReturnJailFree(); err != nil {
			s.emit(ctx, models.EventAnomaly, player.ID, 0, 0, "spent jail-free card had no deck to return to")
		}
		s.releaseFromJail(ctx, player, "used a get-out-of-jail-free card")
		return true, nil

	case models.JailChoicePay:
		if !s.chargeFine(ctx, player, s.jailFine) {
			s.finishTurn(ctx)
			return false, nil
		}
		s.releaseFromJail(ctx, player, fmt.Sprintf("paid the %d fine", s.jailFine))
		return true, nil

	case models.JailChoiceStay:
		player.JailTurns++
		if player.JailTurns >= s.maxJailTurns {
			s.forceRelease(ctx, player)
		}
		s.finishTurn(ctx)
		return false, nil

	default:
		d1, d2 := s.roller.RollPair()
		sess.LastDice = [2]int{d1, d2}
		sess.DoublesCount = 0
		out.Dice = sess.LastDice
		out.Doubles = d1 == d2
		s.emit(ctx, models.EventRoll, player.ID, 0, 0,
			fmt.Sprintf("%s rolled %d and %d from jail", player.Name, d1, d2))

		if d1 == d2 {
			// A doubles release moves the player but never grants the
			// usual bonus roll
			s.releaseFromJail(ctx, player, "rolled doubles")
			out.Released = true
			out.PassedGo = s.move(ctx, player, d1+d2)
			out.NewPosition = player.Position
			s.resolveSpace(ctx, player, d1+d2)
		} else {
			player.JailTurns++
			if player.JailTurns >= s.maxJailTurns {
				s.forceRelease(ctx, player)
			}
		}
		if sess.Phase == models.PhaseRoll && !s.turnClosed {
			s.finishTurn(ctx)
		}
		out.Phase = sess.Phase
		return false, nil
	}
}

// forceRelease ends a jail stay at the turn cap: the fine is charged,
// with bankruptcy against the bank if the player cannot raise it
func (s *service) forceRelease(ctx context.Context, player *models.Player) {
	if !s.chargeFine(ctx, player, s.jailFine) {
		return
	}
	s.releaseFromJail(ctx, player, "served the maximum jail term")
}

func (s *service) sendToJail(ctx context.Context, player *models.Player) {
	player.Position = s.jailPosition
	player.InJail = true
	player.JailTurns = 0
	s.sess.DoublesCount = 0
}

func (s *service) releaseFromJail(ctx context.Context, player *models.Player, how string) {
	player.InJail = false
	player.JailTurns = 0
	s.emit(ctx, models.EventJailRelease, player.ID, player.Position, 0,
		fmt.Sprintf("%s %s and is released from jail", player.Name, how))
}

// declinePending routes a declined or unaffordable purchase to the
// auction subsystem. When the auction is skipped the property stays
// unsold and the turn ends.
func (s *service) declinePending(ctx context.Context, player *models.Player) (bool, error) {
	sess := s.sess
	position := sess.PendingPosition

	out, err := s.auction.Start(sess, &auction.StartInput{
		Position:        position,
		TriggerPlayerID: player.ID,
	})
	if err != nil {
		return false, err
	}

	if !out.Started {
		s.emit(ctx, models.EventPass, player.ID, position, 0,
			fmt.Sprintf("%s declined %s; no qualified bidders, property stays unsold", player.Name, s.catalog.Space(position).Name))
		s.finishTurn(ctx)
		return false, nil
	}

	s.emit(ctx, models.EventAuction, player.ID, position, out.Auction.MinimumBid,
		fmt.Sprintf("auction opened for %s at minimum %d", s.catalog.Space(position).Name, out.Auction.MinimumBid))
	s.runAutoAuction(ctx)
	return true, nil
}

// runAutoAuction plays automated bidders until the auction resolves or
// rotation reaches a human
func (s *service) runAutoAuction(ctx context.Context) {
	sess := s.sess
	for sess.Auction != nil {
		if s.checkAuctionEnd(ctx) {
			return
		}

		bidderID := s.auction.CurrentBidderID(sess)
		provider := s.providers[bidderID]
		if provider == nil {
			return
		}
		bidder := sess.Player(bidderID)
		if bidder == nil {
			return
		}

		space := s.catalog.Space(sess.Auction.Position)
		amount, ok := provider.AuctionBid(space, sess.Auction.HighBid, sess.Auction.MinimumBid, bidder.Cash, sess.OwnedBy(bidderID))
		if ok {
			if err := s.auction.Bid(sess, bidderID, amount); err != nil {
				ok = false
			} else {
				s.emit(ctx, models.EventBid, bidderID, sess.Auction.Position, amount,
					fmt.Sprintf("%s bid %d", bidder.Name, amount))
			}
		}
		if !ok {
			if err := s.auction.Pass(sess, bidderID); err != nil {
				s.emit(ctx, models.EventAnomaly, bidderID, 0, 0,
					fmt.Sprintf("automated bidder could not act: %v", err))
				return
			}
			s.emit(ctx, models.EventPass, bidderID, sess.Auction.Position, 0,
				fmt.Sprintf("%s passed", bidder.Name))
		}
	}
}

// checkAuctionEnd resolves a due auction and ends the interrupted turn.
// Reports whether the auction is gone.
func (s *service) checkAuctionEnd(ctx context.Context) bool {
	sess := s.sess
	result, err := s.auction.CheckEnd(sess)
	if err != nil {
		s.emit(ctx, models.EventAnomaly, "", 0, 0,
			fmt.Sprintf("auction failed to settle, discarding: %v", err))
		sess.Auction = nil
		s.finishTurn(ctx)
		return true
	}
	if result == nil {
		return sess.Auction == nil
	}

	if result.Sold {
		s.emit(ctx, models.EventAuction, result.WinnerID, result.Position, result.Amount,
			fmt.Sprintf("%s won the auction for %s at %d", s.playerName(result.WinnerID), s.catalog.Space(result.Position).Name, result.Amount))
		s.notifyMood(result.WinnerID, true)
	} else {
		s.emit(ctx, models.EventAuction, "", result.Position, 0,
			fmt.Sprintf("auction for %s ended unsold", s.catalog.Space(result.Position).Name))
	}
	s.finishTurn(ctx)
	return true
}

func (s *service) autoBuyDecision(ctx context.Context, player *models.Player) {
	sess := s.sess
	provider := s.providers[player.ID]
	position := sess.PendingPosition
	space := s.catalog.Space(position)

	if provider.ShouldBuy(space, player.Cash, sess.OwnedBy(player.ID)) {
		price, err := s.property.Buy(sess, player, position)
		if err == nil {
			s.emit(ctx, models.EventPurchase, player.ID, position, price,
				fmt.Sprintf("%s bought %s for %d", player.Name, space.Name, price))
			s.finishTurn(ctx)
			return
		}
	}
	if _, err := s.declinePending(ctx, player); err != nil {
		s.emit(ctx, models.EventAnomaly, player.ID, position, 0,
			fmt.Sprintf("could not open auction: %v", err))
		s.finishTurn(ctx)
	}
}

// autoDevelop gives an automated player one development action at the
// top of their turn
func (s *service) autoDevelop(ctx context.Context, player *models.Player) {
	provider := s.providers[player.ID]
	if provider == nil {
		return
	}
	sess := s.sess

	position, ok := provider.DevelopmentAction(sess.OwnedBy(player.ID), player.Cash)
	if !ok {
		return
	}
	state := sess.Properties[position]
	if state == nil || state.OwnerID != player.ID {
		return
	}

	var amount int
	var err error
	var what string
	if state.Houses == models.HotelHouseCount-1 {
		amount, err = s.property.BuildHotel(sess, player, position)
		what = "a hotel"
	} else {
		amount, err = s.property.BuildHouse(sess, player, position)
		what = "a house"
	}
	if err != nil {
		return
	}
	s.emit(ctx, models.EventDevelopment, player.ID, position, amount,
		fmt.Sprintf("%s built %s on %s", player.Name, what, s.catalog.Space(position).Name))
}

// finishTurn closes out the current player's action: back to the roll
// phase, extra roll on doubles, otherwise advance rotation. Deferred
// while external motion is in progress.
func (s *service) finishTurn(ctx context.Context) {
	sess := s.sess
	if sess.Phase == models.PhaseGameOver {
		return
	}
	s.turnClosed = true
	if sess.InMotion {
		s.advancePending = true
		return
	}

	sess.Phase = models.PhaseRoll
	sess.PendingPosition = 0
	if s.evaluateGameOver(ctx) {
		return
	}

	current := sess.CurrentPlayer()
	if current != nil && current.Active() && !current.InJail &&
		sess.DoublesCount > 0 && sess.LastDice[0] == sess.LastDice[1] {
		// Doubles grant the same player another roll
		return
	}
	s.advanceTurn()
}

// advanceTurn moves the rotation cursor to the next active player
func (s *service) advanceTurn() {
	sess := s.sess
	sess.DoublesCount = 0
	sess.PendingJailChoice = ""
	for i := 0; i < len(sess.Players); i++ {
		sess.CurrentIndex = (sess.CurrentIndex + 1) % len(sess.Players)
		if sess.Players[sess.CurrentIndex].Active() {
			return
		}
	}
}

// evaluateGameOver applies the two end rules. Full games end when at
// most one active player remains. Timed games raise an alarm when the
// limit passes, then conclude once every active player has completed at
// least one more circuit than they had at the alarm; highest net worth
// wins, ties reported as a set.
func (s *service) evaluateGameOver(ctx context.Context) bool {
	sess := s.sess
	if sess.Phase == models.PhaseGameOver {
		return true
	}

	active := sess.ActivePlayers()
	if len(active) <= 1 {
		var winners []string
		if len(active) == 1 {
			winners = []string{active[0].ID}
		} else if s.lastRemovedID != "" {
			winners = []string{s.lastRemovedID}
		}
		s.endGame(ctx, winners)
		return true
	}

	if sess.Mode != models.ModeTimed {
		return false
	}

	if !sess.AlarmRaised {
		elapsed := s.clock.Now().Sub(sess.CreatedAt) - sess.PausedFor
		if elapsed <= sess.TimeLimit {
			return false
		}
		sess.AlarmRaised = true
		sess.AlarmLaps = make(map[string]int, len(active))
		for _, p := range active {
			sess.AlarmLaps[p.ID] = p.Circuits
		}
		s.emit(ctx, models.EventTimeAlarm, "", 0, 0, "time limit reached, final laps begin")
		return false
	}

	for _, p := range active {
		if p.Circuits <= sess.AlarmLaps[p.ID] {
			return false
		}
	}

	best := -1
	var winners []string
	for _, p := range active {
		worth := s.bankruptcy.NetWorth(sess, p)
		switch {
		case worth > best:
			best = worth
			winners = []string{p.ID}
		case worth == best:
			winners = append(winners, p.ID)
		}
	}
	s.endGame(ctx, winners)
	return true
}

func (s *service) endGame(ctx context.Context, winnerIDs []string) {
	sess := s.sess
	sess.Phase = models.PhaseGameOver
	sess.Auction = nil
	sess.WinnerIDs = winnerIDs

	names := make([]string, 0, len(winnerIDs))
	for _, id := range winnerIDs {
		names = append(names, s.playerName(id))
	}
	message := "game over"
	if len(names) > 0 {
		message = fmt.Sprintf("game over, winner(s): %v", names)
	}
	s.emit(ctx, models.EventGameOver, "", 0, 0, message)
}

// ensureFunds liquidates the debtor's assets until the amount is
// covered, declaring bankruptcy against the creditor (or the bank when
// creditor is nil) if liquidation falls short. Reports whether the
// debtor can now pay.
func (s *service) ensureFunds(ctx context.Context, debtor *models.Player, creditor *models.Player, amount int) bool {
	sess := s.sess
	if debtor.Cash >= amount {
		return true
	}

	s.emit(ctx, models.EventLiquidation, debtor.ID, 0, amount,
		fmt.Sprintf("%s must raise %d", debtor.Name, amount))
	ok, err := s.bankruptcy.RaiseFunds(sess, debtor, amount)
	if err != nil {
		s.emit(ctx, models.EventAnomaly, debtor.ID, 0, 0,
			fmt.Sprintf("liquidation failed: %v", err))
	}
	if ok {
		return true
	}

	seized, err := s.bankruptcy.Declare(sess, debtor, creditor)
	if err != nil {
		s.emit(ctx, models.EventAnomaly, debtor.ID, 0, 0,
			fmt.Sprintf("bankruptcy failed: %v", err))
		return false
	}
	s.lastRemovedID = debtor.ID
	s.emit(ctx, models.EventBankruptcy, debtor.ID, 0, seized,
		fmt.Sprintf("%s is bankrupt", debtor.Name))
	s.notifyMood(debtor.ID, false)
	if creditor != nil {
		s.notifyMood(creditor.ID, true)
	}
	return false
}

func (s *service) chargeToBank(ctx context.Context, debtor *models.Player, amount int) bool {
	if !s.ensureFunds(ctx, debtor, nil, amount) {
		return false
	}
	if err := s.ledger.PayToBank(s.sess, debtor, amount); err != nil {
		s.emit(ctx, models.EventAnomaly, debtor.ID, 0, amount,
			fmt.Sprintf("bank payment failed: %v", err))
		return false
	}
	s.notifyMood(debtor.ID, false)
	return true
}

func (s *service) chargeFine(ctx context.Context, debtor *models.Player, amount int) bool {
	if !s.ensureFunds(ctx, debtor, nil, amount) {
		return false
	}
	if err := s.ledger.PayFine(s.sess, debtor, amount); err != nil {
		s.emit(ctx, models.EventAnomaly, debtor.ID, 0, amount,
			fmt.Sprintf("fine payment failed: %v", err))
		return false
	}
	s.notifyMood(debtor.ID, false)
	return true
}

func (s *service) chargePlayer(ctx context.Context, debtor, creditor *models.Player, amount int) bool {
	if !s.ensureFunds(ctx, debtor, creditor, amount) {
		return false
	}
	if err := s.ledger.Transfer(s.sess, debtor, creditor, amount); err != nil {
		s.emit(ctx, models.EventAnomaly, debtor.ID, 0, amount,
			fmt.Sprintf("transfer failed: %v", err))
		return false
	}
	s.notifyMood(debtor.ID, false)
	s.notifyMood(creditor.ID, true)
	return true
}

// creditFromBank pays the player, clamping to what the bank holds
func (s *service) creditFromBank(ctx context.Context, player *models.Player, amount int) {
	sess := s.sess
	if amount > sess.Bank {
		s.emit(ctx, models.EventAnomaly, player.ID, 0, amount,
			fmt.Sprintf("bank cannot cover %d, paying %d", amount, sess.Bank))
		amount = sess.Bank
	}
	if err := s.ledger.PayFromBank(sess, player, amount); err != nil {
		s.emit(ctx, models.EventAnomaly, player.ID, 0, amount,
			fmt.Sprintf("bank payout failed: %v", err))
		return
	}
	s.notifyMood(player.ID, true)
}

func (s *service) notifyMood(playerID string, happy bool) {
	if reactive, ok := s.providers[playerID].(strategy.MoodReactive); ok {
		reactive.ReactTo(happy)
	}
}

// emit appends an event to the feed. Feed failures never affect game
// state; the feed is presentation only.
func (s *service) emit(ctx context.Context, eventType models.EventType, playerID string, position, amount int, message string) {
	now := s.clock.Now()
	_ = s.feed.Append(ctx, &feedRepo.AppendInput{Event: &models.Event{
		ID:        s.uuid.NewUUID(),
		GameID:    s.sess.ID,
		Type:      eventType,
		PlayerID:  playerID,
		Position:  position,
		Amount:    amount,
		Message:   message,
		Timestamp: now,
	}})
	s.sess.UpdatedAt = now
}
