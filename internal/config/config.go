package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/sea-battle/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultBotThinkMin  = time.Second
	defaultBotThinkMax  = time.Second * 4
	defaultMigrationDir = "file://db/migration"
)

type Config struct {
	Stage    string
	LogLevel string

	// The computer waits a random time in this range before
	// picking a target.
	BotThinkMin time.Duration
	BotThinkMax time.Duration

	// 0 keeps the spectator endpoint off
	SpectatePort int

	// empty keeps analytics off
	DatabaseUrl  string
	MigrationDir string

	// 0 seeds from the clock
	RngSeed int64
}

// Load reads the environment. Outside prod a .env file is loaded
// first when there is one; values already in the environment win.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:        os.Getenv("STAGE"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		DatabaseUrl:  os.Getenv("DATABASE_URL"),
		MigrationDir: os.Getenv("MIGRATION_DIR"),
		BotThinkMin:  defaultBotThinkMin,
		BotThinkMax:  defaultBotThinkMax,
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrInvalidStage(cfg.Stage)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.MigrationDir == "" {
		cfg.MigrationDir = defaultMigrationDir
	}

	var err error
	if cfg.BotThinkMin, err = durationMsEnv("BOT_THINK_MIN_MS", cfg.BotThinkMin); err != nil {
		return Config{}, err
	}
	if cfg.BotThinkMax, err = durationMsEnv("BOT_THINK_MAX_MS", cfg.BotThinkMax); err != nil {
		return Config{}, err
	}
	if cfg.BotThinkMax < cfg.BotThinkMin {
		cfg.BotThinkMax = cfg.BotThinkMin
	}

	port, err := intEnv("SPECTATE_PORT", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.SpectatePort = port

	seed, err := intEnv("RNG_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.RngSeed = int64(seed)

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, cerr.ErrInvalidEnvInt(key, raw)
	}
	return value, nil
}

func durationMsEnv(key string, fallback time.Duration) (time.Duration, error) {
	ms, err := intEnv(key, -1)
	if err != nil {
		return 0, err
	}
	if ms == -1 {
		return fallback, nil
	}
	return time.Duration(ms) * time.Millisecond, nil
}
