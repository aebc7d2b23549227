package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"coinbot/bot"
	"coinbot/config"
	"coinbot/database"
	"coinbot/events"
	"coinbot/health"
	"coinbot/service"
	"coinbot/store"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting coinbot...")

	// Load configuration
	cfg := config.Get()

	// Initialize the account store
	var (
		accountStore service.Store
		db           *database.DB
		err          error
	)
	switch cfg.StoreBackend {
	case config.StoreBackendFile:
		log.Printf("Using file store at %s", cfg.DataFile)
		accountStore = store.NewFileStore(cfg.DataFile)
	case config.StoreBackendMemory:
		log.Println("Using in-memory store, balances will not survive a restart")
		accountStore = store.NewMemoryStore()
	case config.StoreBackendPostgres:
		log.Println("Connecting to database...")
		db, err = database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Println("Database connection established successfully")
		accountStore = store.NewPostgresStore(db)
	default:
		return fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}

	// Initialize event bus
	eventBus := events.NewBus()
	eventBus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.BalanceChangeEvent); ok {
			log.Printf("Balance change: user=%s %d -> %d (%s)", e.UserID, e.OldBalance, e.NewBalance, e.Reason)
		}
	})

	// Initialize services
	log.Println("Initializing services...")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	accountService := service.NewAccountService(accountStore, eventBus, cfg.StartingBalance)
	economyService := service.NewEconomyService(accountService, rng, cfg.DailyAmount, cfg.DailyWindow, cfg.BegWindow)

	rules := service.ClassicRules
	if cfg.GameMode == config.GameModeHighStakes {
		rules = service.HighStakesRules
	}
	gamblingService := service.NewGamblingService(accountService, rng, rules, cfg.RollWindow)
	statsService := service.NewStatsService(accountService)
	log.Println("Services initialized successfully")

	// Optional health endpoint
	var healthServer *health.Server
	if cfg.HealthPort != "" {
		healthServer = health.NewServer(cfg.HealthPort)
		go func() {
			log.Printf("Health endpoint listening on :%s", cfg.HealthPort)
			if err := healthServer.Start(); err != nil {
				log.Printf("Health server error: %v", err)
			}
		}()
	}

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:           cfg.DiscordToken,
		GuildID:         cfg.DiscordGuildID,
		RollDelay:       cfg.RollDelay,
		LeaderboardSize: cfg.LeaderboardSize,
	}
	discordBot, err := bot.New(botConfig, accountService, economyService, gamblingService, statsService)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode (%s rules)...", cfg.Environment, cfg.GameMode)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	if healthServer != nil {
		if err := healthServer.Shutdown(); err != nil {
			log.Printf("Error shutting down health server: %v", err)
		}
	}

	if db != nil {
		log.Println("Closing database connection...")
		db.Close()
	}

	log.Println("Shutdown completed")
	return nil
}
