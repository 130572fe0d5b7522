package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-picker/internal"
	"github.com/rocketscienceinc/tictactoe-picker/internal/config"
)

// main - loads the picker configuration, builds the logger and serves the page until a signal arrives.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	logger.Info("picker configured",
		"sources", len(conf.SourceIDs),
		"destinations", len(conf.DestinationIDs),
		"history", conf.Redis.Enabled,
	)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config from CONFIG_PATH or ./config.yml.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(config.Path(baseDir))
}

// initialize logger, the level was checked by config.MustLoad.
func initLogger(conf *config.Config) *slog.Logger {
	level, _ := conf.Level()

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
