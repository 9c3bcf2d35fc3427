package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

type GameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (entity.Game, error)
	MakeMove(ctx context.Context, sessionID string, cell int) (entity.Game, error)
	ResetGame(ctx context.Context, sessionID string) (entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, game entity.Game) error
	GetByID(ctx context.Context, sessionID string) (entity.Game, error)
}

type gameUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepo

	// serializes read-modify-write of games so every move is applied atomically
	mu sync.Mutex
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game"),
		gameRepo: gameRepo,
	}
}

func (that *gameUseCase) GetOrCreateGame(ctx context.Context, sessionID string) (entity.Game, error) {
	if sessionID == "" {
		return entity.Game{}, apperror.ErrEmptySessionID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.getOrCreateGame(ctx, sessionID)
}

func (that *gameUseCase) MakeMove(ctx context.Context, sessionID string, cell int) (entity.Game, error) {
	if sessionID == "" {
		return entity.Game{}, apperror.ErrEmptySessionID
	}

	log := that.logger.With("method", "MakeMove", "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return entity.Game{}, err
	}

	updated := tictactoe.ApplyMove(game, cell)
	if updated == game {
		log.Debug("move ignored", "finished", game.IsFinished())
		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, sessionID, updated); err != nil {
		return entity.Game{}, fmt.Errorf("failed to update game: %w", err)
	}

	if updated.IsFinished() {
		log.Info("game finished", "outcome", updated.Outcome.Kind, "winner", updated.Outcome.Winner)
	}

	return updated, nil
}

func (that *gameUseCase) ResetGame(ctx context.Context, sessionID string) (entity.Game, error) {
	if sessionID == "" {
		return entity.Game{}, apperror.ErrEmptySessionID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	game := tictactoe.Reset()
	if err := that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return entity.Game{}, fmt.Errorf("failed to reset game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) getOrCreateGame(ctx context.Context, sessionID string) (entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, apperror.ErrGameNotFound) {
		return entity.Game{}, fmt.Errorf("failed to get game: %w", err)
	}

	game = tictactoe.Reset()
	if err = that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return entity.Game{}, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}
