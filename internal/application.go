package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-search/internal/config"
	"github.com/rocketscienceinc/tictactoe-search/internal/repository"
	"github.com/rocketscienceinc/tictactoe-search/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-search/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-search/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-search/transport/rest"
	"github.com/rocketscienceinc/tictactoe-search/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	game, err := tictactoe.New(conf.Board.Rows, conf.Board.Columns, conf.Board.K)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	seed := conf.Search.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	matchRepo := repository.NewMatchRepository(redisStorage)
	scoreRepo := repository.NewScoreRepository(redisStorage)
	matchUseCase := usecase.NewMatchManager(
		logger,
		game,
		rand.New(rand.NewSource(seed)), //nolint:gosec // game moves, not secrets
		matchRepo,
		scoreRepo,
		conf.Search.Parallelism,
		conf.Search.MaxMatches,
	)

	group, ctx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, matchUseCase)); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, matchUseCase).Start(ctx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
