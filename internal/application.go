package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/config"
	"github.com/rocketscienceinc/tictactoe-web/internal/i18n"
	"github.com/rocketscienceinc/tictactoe-web/internal/preference"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-web/internal/theme"
	"github.com/rocketscienceinc/tictactoe-web/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-web/transport/rest"
	"github.com/rocketscienceinc/tictactoe-web/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

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

	gameRepo, closer, err := NewGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close game storage", "error", err)
		}
	}()

	handler, err := NewHandler(logger, conf, gameRepo)
	if err != nil {
		return err
	}

	server := rest.NewServer(conf.HTTPPort, handler)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
		if httpErr := server.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		return server.Shutdown(shutdownCtx)
	}
}

// NewGameRepository builds the session game store selected by conf.Storage.
// The returned closer releases the store's connections.
func NewGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, io.Closer, error) {
	switch conf.Storage {
	case config.StorageMemory, "":
		return repository.NewMemoryGameRepository(conf.SessionTTL), io.NopCloser(nil), nil
	case config.StorageRedis:
		client, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}
		return repository.NewGameRepository(client, conf.SessionTTL), client, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", apperror.ErrUnknownStorage, conf.Storage)
	}
}

// NewHandler wires the use case, preferences and both transports onto one mux.
func NewHandler(logger *slog.Logger, conf *config.Config, gameRepo repository.GameRepository) (http.Handler, error) {
	translator, err := i18n.New(conf.UI.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("could not load translations: %w", err)
	}

	if _, ok := theme.Lookup(conf.UI.DefaultTheme); !ok {
		logger.Warn("unknown default theme, using built-in default", "theme", conf.UI.DefaultTheme, "default", theme.DefaultName)
	}

	prefs := preference.NewResolver(theme.NewResolver(conf.UI.DefaultTheme), translator)
	gameUseCase := usecase.NewGameUseCase(logger, gameRepo)

	mux := http.NewServeMux()
	rest.NewHandlers(logger, gameUseCase, prefs, conf.SessionTTL).Register(mux)
	websocket.New(logger, gameUseCase, prefs, conf.SessionTTL).Register(mux)

	return mux, nil
}
