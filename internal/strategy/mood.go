package strategy

import "github.com/magnate-game/magnate/internal/models"

const (
	moodStep  = 0.05
	moodLimit = 0.3
)

// Mood wraps the weighted strategy with an emotional modifier: losing
// money makes it value property more aggressively, winning calms it
// down. The modifier stays within ±0.3 and scales perceived value by
// 1 + 2×modifier.
type Mood struct {
	base *Simple
	mood float64
}

// NewMood creates the mood-adjusted strategy over a weighted base
func NewMood(base *Simple) *Mood {
	return &Mood{base: base}
}

// ReactTo shifts the mood after a money swing
func (m *Mood) ReactTo(happy bool) {
	if happy {
		m.mood -= moodStep
		if m.mood < -moodLimit {
			m.mood = -moodLimit
		}
	} else {
		m.mood += moodStep
		if m.mood > moodLimit {
			m.mood = moodLimit
		}
	}
}

// Modifier exposes the current mood for inspection
func (m *Mood) Modifier() float64 {
	return m.mood
}

func (m *Mood) adjustedValue(space *models.SpaceDefinition, owned []*models.PropertyState) float64 {
	return m.base.Value(space, owned) * (1.0 + m.mood*2.0)
}

// ShouldBuy buys whenever the mood-adjusted value covers the list price
func (m *Mood) ShouldBuy(space *models.SpaceDefinition, cash int, owned []*models.PropertyState) bool {
	if cash < space.Price {
		return false
	}
	return m.adjustedValue(space, owned) >= float64(space.Price)
}

// AuctionBid bids like the base strategy but caps at the mood-adjusted
// value
func (m *Mood) AuctionBid(space *models.SpaceDefinition, currentBid, minimum, cash int, owned []*models.PropertyState) (int, bool) {
	bid, ok := m.base.AuctionBid(space, currentBid, minimum, cash, owned)
	if !ok {
		return 0, false
	}

	cap := 1.1 * m.adjustedValue(space, owned)
	if float64(minimum) > cap {
		return 0, false
	}
	if float64(bid) > cap {
		bid = int(cap)
	}
	if bid < minimum {
		return 0, false
	}
	return bid, true
}

// JailChoice defers to the base strategy
func (m *Mood) JailChoice(player *models.Player) models.JailChoice {
	return m.base.JailChoice(player)
}

// DevelopmentAction defers to the base strategy
func (m *Mood) DevelopmentAction(owned []*models.PropertyState, cash int) (int, bool) {
	return m.base.DevelopmentAction(owned, cash)
}
