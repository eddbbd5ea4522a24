// Package strategy defines the decision boundary consumed by the turn and
// auction machinery for non-human actors. The engine calls a Provider
// synchronously and applies whatever comes back exactly as it would a
// human command; it never inspects how the decision was made.
package strategy

import "github.com/magnate-game/magnate/internal/models"

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/magnate-game/magnate/internal/strategy Provider

// Provider makes gameplay decisions for an automated player
type Provider interface {
	// ShouldBuy decides whether to buy the space at list price
	ShouldBuy(space *models.SpaceDefinition, cash int, owned []*models.PropertyState) bool

	// AuctionBid returns the bid to place, or ok=false to pass
	AuctionBid(space *models.SpaceDefinition, currentBid, minimum, cash int, owned []*models.PropertyState) (int, bool)

	// JailChoice picks the jail-resolution option for this turn
	JailChoice(player *models.Player) models.JailChoice

	// DevelopmentAction returns a board position to build on, or
	// ok=false to do nothing this turn
	DevelopmentAction(owned []*models.PropertyState, cash int) (int, bool)
}

// MoodReactive is implemented by providers whose play shifts with game
// events. The engine reports money swings; reacting is optional.
type MoodReactive interface {
	ReactTo(happy bool)
}
