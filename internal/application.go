package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-picker/internal/board"
	"github.com/rocketscienceinc/tictactoe-picker/internal/config"
	"github.com/rocketscienceinc/tictactoe-picker/internal/repository"
	"github.com/rocketscienceinc/tictactoe-picker/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-picker/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-picker/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-picker/internal/validation"
	"github.com/rocketscienceinc/tictactoe-picker/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var results repository.ResultRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, storage.Options{
			Addr:     conf.Redis.GetRedisAddr(),
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisStorage.Connection, conf.Redis.HistorySize)
	} else {
		log.Info("Validation history is disabled")
	}

	sizes := conf.Sizes()
	if unsized := sizes.Unsized(); len(unsized) > 0 {
		log.Warn("Source ids without a size marker keep the destination size", "ids", unsized)
	}

	boardCells, err := board.BoardCells(conf.DestinationIDs, conf.InitialBoard)
	if err != nil {
		return fmt.Errorf("could not build board: %w", err)
	}

	page, err := board.New(board.PaletteCells(conf.SourceIDs, sizes), boardCells)
	if err != nil {
		return fmt.Errorf("could not build board: %w", err)
	}

	journal := usecase.NewJournal(results)
	validator := validation.NewClient(logger, validation.Options{
		Host:       conf.Validation.Host,
		Timeout:    conf.Validation.Timeout,
		AllowStale: conf.Validation.AllowStale,
	}, page, journal)
	defer validator.Close()

	gameController := tictactoe.NewGameController(logger, page, validator, sizes, conf.SourceIDs, conf.DestinationIDs)
	gameManager := usecase.NewGameManager(logger, gameController, page, journal)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "validation_host", conf.Validation.Host)
	if err = rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameManager)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
