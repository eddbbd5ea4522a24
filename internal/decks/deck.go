// Package decks implements the two card decks: ordered draw piles with a
// discard pile that becomes the new draw pile when exhausted. Cards are a
// fixed set; nothing is ever lost, only retained jail-free cards sit
// outside the piles until spent.
package decks

import (
	"errors"
	"math/rand"
	"time"

	"github.com/magnate-game/magnate/internal/models"
)

// ErrNoRetainedCard is returned when a jail-free card is returned to a
// deck that has none outstanding
var ErrNoRetainedCard = errors.New("no retained jail-free card outstanding")

// Config for a deck set
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Deck is one draw/discard pile pair
type Deck struct {
	kind     models.DeckKind
	draw     []*models.Card
	discard  []*models.Card
	retained int
	random   *rand.Rand
}

// NewDeck shuffles the given cards into a draw pile
func NewDeck(kind models.DeckKind, cards []*models.Card, random *rand.Rand) *Deck {
	draw := make([]*models.Card, len(cards))
	copy(draw, cards)
	random.Shuffle(len(draw), func(i, j int) {
		draw[i], draw[j] = draw[j], draw[i]
	})

	return &Deck{
		kind:   kind,
		draw:   draw,
		random: random,
	}
}

// Draw pops the top card, reshuffling the discard pile into a new draw
// pile first if the draw pile is empty. Exhaustion is never an error.
func (d *Deck) Draw() *models.Card {
	if len(d.draw) == 0 {
		d.reshuffle()
	}
	if len(d.draw) == 0 {
		// Every card is either discarded-and-reshuffled or retained;
		// an empty deck here means all cards are held as jail-free
		// cards, which the fixed card sets cannot produce.
		return nil
	}

	card := d.draw[0]
	d.draw = d.draw[1:]
	return card
}

// Discard returns a drawn card to the bottom of the discard pile
func (d *Deck) Discard(card *models.Card) {
	d.discard = append(d.discard, card)
}

// Retain marks a drawn jail-free card as held by a player instead of
// discarded
func (d *Deck) Retain() {
	d.retained++
}

// ReturnRetained puts a spent jail-free card back into the discard pile
func (d *Deck) ReturnRetained() error {
	if d.retained == 0 {
		return ErrNoRetainedCard
	}
	d.retained--
	for _, c := range cardSet(d.kind) {
		if c.Effect.Kind == models.EffectJailFree {
			d.discard = append(d.discard, c)
			break
		}
	}
	return nil
}

// Retained reports how many jail-free cards from this deck are held
func (d *Deck) Retained() int {
	return d.retained
}

// Counts reports the draw and discard pile sizes
func (d *Deck) Counts() (int, int) {
	return len(d.draw), len(d.discard)
}

func (d *Deck) reshuffle() {
	d.draw = d.discard
	d.discard = nil
	d.random.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Set holds both decks of a game session
type Set struct {
	potLuck     *Deck
	opportunity *Deck
}

// NewSet builds the two standard decks
func NewSet(cfg *Config) *Set {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	random := rand.New(rand.NewSource(seed))

	return &Set{
		potLuck:     NewDeck(models.DeckPotLuck, PotLuckCards(), random),
		opportunity: NewDeck(models.DeckOpportunityKnocks, OpportunityKnocksCards(), random),
	}
}

// Deck returns the deck of the given kind
func (s *Set) Deck(kind models.DeckKind) *Deck {
	if kind == models.DeckOpportunityKnocks {
		return s.opportunity
	}
	return s.potLuck
}

// ReturnJailFree returns one spent jail-free card to whichever deck has
// one outstanding
func (s *Set) ReturnJailFree() error {
	if s.potLuck.Retained() > 0 {
		return s.potLuck.ReturnRetained()
	}
	return s.opportunity.ReturnRetained()
}
