package game

import (
	"context"
	"fmt"

	"github.com/magnate-game/magnate/internal/models"
)

// drawCard draws from the named deck and applies the card. Every card
// except a retained jail-free card goes back to the discard pile.
func (s *service) drawCard(ctx context.Context, player *models.Player, kind models.DeckKind) {
	deck := s.decks.Deck(kind)
	card := deck.Draw()
	if card == nil {
		s.emit(ctx, models.EventAnomaly, player.ID, player.Position, 0,
			fmt.Sprintf("deck %s had no card to draw", kind))
		return
	}

	s.emit(ctx, models.EventCardDrawn, player.ID, player.Position, 0,
		fmt.Sprintf("%s drew: %s", player.Name, card.Text))

	if s.applyCard(ctx, player, card) {
		return
	}
	deck.Discard(card)
}

// applyCard applies the card's typed effect. Reports whether the card is
// retained by the player instead of discarded.
func (s *service) applyCard(ctx context.Context, player *models.Player, card *models.Card) bool {
	sess := s.sess
	effect := card.Effect

	switch effect.Kind {
	case models.EffectCollect:
		s.creditFromBank(ctx, player, effect.Amount)

	case models.EffectPay:
		s.chargeToBank(ctx, player, effect.Amount)

	case models.EffectFine:
		s.chargeFine(ctx, player, effect.Amount)

	case models.EffectMoveTo:
		s.moveTo(ctx, player, effect.Target, true)
		s.resolveSpace(ctx, player, sess.LastDice[0]+sess.LastDice[1])

	case models.EffectMoveBack:
		s.moveBack(ctx, player, effect.Spaces)
		s.resolveSpace(ctx, player, sess.LastDice[0]+sess.LastDice[1])

	case models.EffectGoToJail:
		s.emit(ctx, models.EventJail, player.ID, s.jailPosition, 0,
			fmt.Sprintf("%s is sent to jail", player.Name))
		s.sendToJail(ctx, player)

	case models.EffectJailFree:
		player.JailFreeCards++
		s.decks.Deck(card.Deck).Retain()
		return true

	case models.EffectBirthday:
		for _, other := range sess.ActivePlayers() {
			if other.ID == player.ID {
				continue
			}
			s.chargePlayer(ctx, other, player, effect.Amount)
		}

	case models.EffectRepairs:
		assessment := s.repairAssessment(player, effect)
		if assessment > 0 {
			s.chargeToBank(ctx, player, assessment)
		}

	default:
		s.emit(ctx, models.EventAnomaly, player.ID, 0, 0,
			fmt.Sprintf("card %s has unknown effect %q", card.ID, effect.Kind))
	}
	return false
}

// repairAssessment charges per house and per hotel across the player's
// developments
func (s *service) repairAssessment(player *models.Player, effect models.CardEffect) int {
	total := 0
	for _, state := range s.sess.OwnedBy(player.ID) {
		if state.HasHotel() {
			total += effect.PerHotel
		} else {
			total += state.Houses * effect.PerHouse
		}
	}
	return total
}
