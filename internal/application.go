package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the console game until the player leaves or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, resumeID string) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	options, err := consoleOptions(conf, resumeID)
	if err != nil {
		return err
	}

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	bot := service.NewBotService(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	gameUseCase := usecase.NewGameManager(logger, gameRepo, bot)

	log.Info("starting console", "storage", conf.Storage, "difficulty", options.Difficulty.String())

	if err = console.New(logger, gameUseCase, os.Stdin, os.Stdout).Start(ctx, options); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

func consoleOptions(conf *config.Config, resumeID string) (console.Options, error) {
	difficulty, err := entity.ParseDifficulty(conf.Difficulty)
	if err != nil {
		return console.Options{}, fmt.Errorf("invalid difficulty: %w", err)
	}

	human := entity.Empty
	if conf.HumanMark != "" {
		if human, err = entity.ParseMark(conf.HumanMark); err != nil {
			return console.Options{}, fmt.Errorf("invalid human mark: %w", err)
		}
	}

	return console.Options{
		HumanMark:     human,
		Difficulty:    difficulty,
		ComputerDelay: conf.ComputerDelay,
		ResumeID:      resumeID,
	}, nil
}

// newGameRepository returns the configured session store and a func that releases it.
func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	switch conf.Storage {
	case config.StorageRedis:
		return newRedisGameRepository(ctx, log, conf)
	case config.StorageSQLite:
		return newSQLiteGameRepository(ctx, log, conf)
	default:
		return repository.NewMemoryGameRepository(), func() {}, nil
	}
}

func newRedisGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRepo := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage, conf.Redis.SessionTTL), closeRepo, nil
}

func newSQLiteGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	sqliteStorage, err := storage.NewSQLite(ctx, conf.SQLite.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
	}

	closeRepo := func() {
		if err := sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
	}

	return repository.NewSQLiteGameRepository(sqliteStorage.Connection), closeRepo, nil
}
