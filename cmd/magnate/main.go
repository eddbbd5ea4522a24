package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/magnate-game/magnate/internal/board"
	"github.com/magnate-game/magnate/internal/common/clock"
	"github.com/magnate-game/magnate/internal/common/uuid"
	"github.com/magnate-game/magnate/internal/decks"
	"github.com/magnate-game/magnate/internal/dice"
	"github.com/magnate-game/magnate/internal/models"
	"github.com/magnate-game/magnate/internal/repositories/feed"
	auctionService "github.com/magnate-game/magnate/internal/services/auction"
	bankruptcyService "github.com/magnate-game/magnate/internal/services/bankruptcy"
	gameService "github.com/magnate-game/magnate/internal/services/game"
	"github.com/magnate-game/magnate/internal/services/ledger"
	propertyService "github.com/magnate-game/magnate/internal/services/property"
	"github.com/magnate-game/magnate/internal/strategy"
)

func main() {
	// Load .env if present; real environment wins
	_ = godotenv.Load()

	ctx := context.Background()

	// Board: built-in layout unless BOARD_FILE points at a YAML board
	catalog, err := loadCatalog()
	if err != nil {
		log.Fatalf("Failed to load board catalog: %v", err)
	}

	// Event feed: Redis when REDIS_ADDR is set, otherwise in memory
	feedRepo, err := buildFeed(ctx)
	if err != nil {
		log.Fatalf("Failed to create feed repository: %v", err)
	}

	diceRoller := dice.New(&dice.Config{})
	systemClock := &clock.DefaultClock{}
	uuidGen := uuid.New()
	deckSet := decks.NewSet(&decks.Config{})
	moneyLedger := ledger.New()

	propertySvc, err := propertyService.New(&propertyService.Config{
		Catalog: catalog,
		Ledger:  moneyLedger,
	})
	if err != nil {
		log.Fatalf("Failed to create property service: %v", err)
	}

	auctionSvc, err := auctionService.New(&auctionService.Config{
		Catalog:       catalog,
		Ledger:        moneyLedger,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create auction service: %v", err)
	}

	bankruptcySvc, err := bankruptcyService.New(&bankruptcyService.Config{
		Catalog:  catalog,
		Ledger:   moneyLedger,
		Property: propertySvc,
	})
	if err != nil {
		log.Fatalf("Failed to create bankruptcy service: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Catalog:       catalog,
		Decks:         deckSet,
		Ledger:        moneyLedger,
		Property:      propertySvc,
		Auction:       auctionSvc,
		Bankruptcy:    bankruptcySvc,
		Feed:          feedRepo,
		Roller:        diceRoller,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	runDemoGame(ctx, gameSvc, catalog, diceRoller)
}

// runDemoGame plays a complete all-AI game and prints the event feed
func runDemoGame(ctx context.Context, gameSvc gameService.Service, catalog *board.Catalog, roller dice.Roller) {
	simple := strategy.NewSimple(&strategy.SimpleConfig{Catalog: catalog, Roller: roller})
	mood := strategy.NewMood(strategy.NewSimple(&strategy.SimpleConfig{Catalog: catalog, Roller: roller}))

	mode := models.ModeFull
	var timeLimit time.Duration
	if minutes := getEnvInt("TIME_LIMIT_MINUTES", 0); minutes > 0 {
		mode = models.ModeTimed
		timeLimit = time.Duration(minutes) * time.Minute
	}

	created, err := gameSvc.CreateGame(ctx, &gameService.CreateGameInput{
		Players: []gameService.PlayerSeed{
			{Name: "Alice", Provider: simple},
			{Name: "Bob", Provider: mood},
			{Name: "Carol", Provider: strategy.NewSimple(&strategy.SimpleConfig{Catalog: catalog, Roller: roller})},
		},
		Mode:      mode,
		TimeLimit: timeLimit,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	log.Printf("Game %s started with %d players", created.GameID, len(created.Players))

	maxTurns := getEnvInt("MAX_TURNS", 2000)
	feedOffset := 0
	for turn := 0; turn < maxTurns; turn++ {
		snap, err := gameSvc.Snapshot(ctx, &gameService.SnapshotInput{FeedOffset: feedOffset})
		if err != nil {
			log.Fatalf("Failed to snapshot game: %v", err)
		}
		for _, event := range snap.Events {
			log.Printf("[%s] %s", event.Type, event.Message)
		}
		feedOffset += len(snap.Events)

		if snap.Phase == models.PhaseGameOver {
			log.Printf("Winners: %v", snap.WinnerIDs)
			return
		}

		if snap.Phase == models.PhaseRoll {
			if _, err := gameSvc.Roll(ctx, &gameService.RollInput{PlayerID: snap.CurrentPlayerID}); err != nil {
				log.Fatalf("Roll failed: %v", err)
			}
		}

		tick, err := gameSvc.Tick(ctx, &gameService.TickInput{})
		if err != nil {
			log.Fatalf("Tick failed: %v", err)
		}
		if tick.GameOver {
			continue
		}
	}
	log.Printf("Stopping after %d turns without a conclusion", maxTurns)
}

func loadCatalog() (*board.Catalog, error) {
	if path := os.Getenv("BOARD_FILE"); path != "" {
		return board.Load(path)
	}
	return board.Default(), nil
}

func buildFeed(ctx context.Context) (feed.Repository, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return feed.NewMemory(), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	return feed.NewRedis(&feed.Config{RedisClient: redisClient})
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
