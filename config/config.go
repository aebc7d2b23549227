package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Store backends
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// Game modes
const (
	GameModeClassic    = "classic"
	GameModeHighStakes = "highstakes"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Storage configuration
	StoreBackend string // "file", "postgres" or "memory"
	DataFile     string // snapshot path for the file backend
	DatabaseURL  string

	// Economy settings
	StartingBalance int64
	DailyAmount     int64
	DailyWindow     time.Duration
	BegWindow       time.Duration

	// Gambling settings
	GameMode   string // "classic" or "highstakes"
	RollWindow time.Duration
	RollDelay  time.Duration

	// Presentation
	LeaderboardSize int

	// HTTP health endpoint, disabled when empty
	HealthPort string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Storage
		StoreBackend: os.Getenv("STORE_BACKEND"),
		DataFile:     os.Getenv("DATA_FILE"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),

		// Economy defaults
		StartingBalance: 100,
		DailyAmount:     50,
		DailyWindow:     24 * time.Hour,
		BegWindow:       time.Minute,

		// Gambling defaults
		GameMode: os.Getenv("GAME_MODE"),

		LeaderboardSize: 5,

		HealthPort: os.Getenv("HEALTH_PORT"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}
	if amount := os.Getenv("DAILY_AMOUNT"); amount != "" {
		if parsedAmount, err := strconv.ParseInt(amount, 10, 64); err == nil {
			config.DailyAmount = parsedAmount
		}
	}
	if size := os.Getenv("LEADERBOARD_SIZE"); size != "" {
		if parsedSize, err := strconv.Atoi(size); err == nil && parsedSize > 0 {
			config.LeaderboardSize = parsedSize
		}
	}

	if config.StoreBackend == "" {
		config.StoreBackend = StoreBackendFile
	}
	if config.DataFile == "" {
		config.DataFile = "user_data.json"
	}

	if config.GameMode == "" {
		config.GameMode = GameModeClassic
	}
	switch config.GameMode {
	case GameModeClassic:
		// Classic play has no roll cooldown and resolves immediately.
	case GameModeHighStakes:
		config.RollWindow = 30 * time.Second
		config.RollDelay = 2 * time.Second
	default:
		return nil, fmt.Errorf("unknown GAME_MODE %q", config.GameMode)
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.StoreBackend == StoreBackendPostgres && config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	}

	return config, nil
}
