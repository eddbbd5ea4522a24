package decks

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/magnate-game/magnate/internal/models"
)

type DeckTestSuite struct {
	suite.Suite
	set *Set
}

func (s *DeckTestSuite) SetupTest() {
	s.set = NewSet(&Config{Seed: 42})
}

func TestDeckTestSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestDeckSizes() {
	s.Len(PotLuckCards(), 17)
	s.Len(OpportunityKnocksCards(), 16)
}

// Drawing through the deck and discarding everything must keep the full
// card set in circulation indefinitely
func (s *DeckTestSuite) TestDrawDiscardCycleKeepsAllCards() {
	deck := s.set.Deck(models.DeckPotLuck)
	size := len(PotLuckCards())

	seen := make(map[string]int)
	for i := 0; i < size*3; i++ {
		card := deck.Draw()
		s.Require().NotNil(card)
		seen[card.ID]++
		deck.Discard(card)
	}

	// Three full cycles: every card drawn exactly three times
	s.Len(seen, size)
	for id, count := range seen {
		s.Equal(3, count, "card %s", id)
	}

	draw, discard := deck.Counts()
	s.Equal(size, draw+discard)
}

func (s *DeckTestSuite) TestReshuffleOnExhaustion() {
	deck := s.set.Deck(models.DeckOpportunityKnocks)
	size := len(OpportunityKnocksCards())

	for i := 0; i < size; i++ {
		card := deck.Draw()
		s.Require().NotNil(card)
		deck.Discard(card)
	}
	draw, discard := deck.Counts()
	s.Equal(0, draw)
	s.Equal(size, discard)

	// The next draw flips the discard pile back into a draw pile
	card := deck.Draw()
	s.Require().NotNil(card)
	draw, discard = deck.Counts()
	s.Equal(size-1, draw)
	s.Equal(0, discard)
}

// A retained jail-free card sits outside both piles until spent, then
// returns via the discard pile
func (s *DeckTestSuite) TestJailFreeRetention() {
	deck := s.set.Deck(models.DeckPotLuck)
	size := len(PotLuckCards())

	var jailFree *models.Card
	for i := 0; i < size; i++ {
		card := deck.Draw()
		s.Require().NotNil(card)
		if card.Effect.Kind == models.EffectJailFree {
			jailFree = card
			deck.Retain()
			continue
		}
		deck.Discard(card)
	}
	s.Require().NotNil(jailFree, "deck must contain a jail-free card")
	s.Equal(1, deck.Retained())

	draw, discard := deck.Counts()
	s.Equal(size-1, draw+discard)

	s.Require().NoError(s.set.ReturnJailFree())
	s.Equal(0, deck.Retained())
	draw, discard = deck.Counts()
	s.Equal(size, draw+discard)
}

func (s *DeckTestSuite) TestReturnWithoutRetained() {
	deck := s.set.Deck(models.DeckPotLuck)
	s.Require().ErrorIs(deck.ReturnRetained(), ErrNoRetainedCard)
}

func (s *DeckTestSuite) TestSeededShuffleIsDeterministic() {
	a := NewSet(&Config{Seed: 7}).Deck(models.DeckPotLuck)
	b := NewSet(&Config{Seed: 7}).Deck(models.DeckPotLuck)

	for i := 0; i < 5; i++ {
		cardA := a.Draw()
		cardB := b.Draw()
		s.Require().NotNil(cardA)
		s.Require().NotNil(cardB)
		s.Equal(cardA.ID, cardB.ID)
	}
}
