package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/magnate-game/magnate/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll generates one uniform integer in [1, sides]
	Roll(sides int) int

	// RollPair generates two independent six-sided rolls
	RollPair() (int, int)
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller implements Roller over math/rand
type roller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &roller{
		random: rand.New(source),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// RollPair generates two independent six-sided rolls
func (r *roller) RollPair() (int, int) {
	return r.Roll(6), r.Roll(6)
}
