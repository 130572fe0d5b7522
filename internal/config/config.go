package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-picker/internal/tictactoe"
)

const (
	boardCells = 9

	pathEnv     = "CONFIG_PATH"
	defaultFile = "config.yml"
)

var (
	ErrEmptyHost           = errors.New("validation host is empty")
	ErrNoSourceIDs         = errors.New("source ids are empty")
	ErrBoardSize           = errors.New("destination ids must describe a 3x3 board")
	ErrDuplicateID         = errors.New("duplicate cell id")
	ErrOverlappingIDs      = errors.New("source and destination ids overlap")
	ErrInvalidHistorySize  = errors.New("history size must be positive")
	ErrInvalidInitialBoard = errors.New("initial board does not match destination ids")
	ErrUnknownLogLevel     = errors.New("unknown log level")
)

type Config struct {
	LogLevel       string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort       string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Validation     Validation `yaml:"validation"`
	Redis          Redis      `yaml:"redis"`
	SourceIDs      []string   `yaml:"source-ids"`
	DestinationIDs []string   `yaml:"destination-ids"`
	InitialBoard   []string   `yaml:"initial-board"`
}

// Validation configures the remote validation authority.
// AllowStale renders responses even when they arrive after the answer to a newer request.
type Validation struct {
	Host       string        `yaml:"host" env:"VALIDATION_HOST" env-default:"https://tictactoe-production.up.railway.app"`
	Timeout    time.Duration `yaml:"timeout" env:"VALIDATION_TIMEOUT" env-default:"0s"`
	AllowStale bool          `yaml:"allow-stale" env:"VALIDATION_ALLOW_STALE"`
}

type Redis struct {
	Enabled     bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host        string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password    string `yaml:"password" env:"REDIS_PASSWORD"`
	DB          int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	HistorySize int64  `yaml:"history-size" env:"REDIS_HISTORY_SIZE" env-default:"50"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

// Validate checks the identifier sets and the initial board before anything is built from them.
func (that *Config) Validate() error {
	if that.Validation.Host == "" {
		return ErrEmptyHost
	}

	if len(that.SourceIDs) == 0 {
		return ErrNoSourceIDs
	}

	if len(that.DestinationIDs) != boardCells {
		return fmt.Errorf("%w: got %d cells", ErrBoardSize, len(that.DestinationIDs))
	}

	seen := make(map[string]bool, len(that.SourceIDs)+len(that.DestinationIDs))
	for _, id := range that.SourceIDs {
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true
	}

	destinations := make(map[string]bool, len(that.DestinationIDs))
	for _, id := range that.DestinationIDs {
		if destinations[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrOverlappingIDs, id)
		}
		destinations[id] = true
	}

	if len(that.InitialBoard) != 0 && len(that.InitialBoard) != len(that.DestinationIDs) {
		return fmt.Errorf("%w: %d tokens", ErrInvalidInitialBoard, len(that.InitialBoard))
	}

	if that.Redis.Enabled && that.Redis.HistorySize <= 0 {
		return ErrInvalidHistorySize
	}

	if _, err := that.Level(); err != nil {
		return err
	}

	return nil
}

// Sizes resolves the size of every palette id.
func (that *Config) Sizes() *tictactoe.SizeTable {
	return tictactoe.NewSizeTable(tictactoe.DefaultSizeRules, that.SourceIDs)
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Path - CONFIG_PATH when set, otherwise config.yml in baseDir.
func Path(baseDir string) string {
	if path := os.Getenv(pathEnv); path != "" {
		return path
	}

	return filepath.Join(baseDir, defaultFile)
}

// Level - slog level named by log-level.
func (that *Config) Level() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
}
