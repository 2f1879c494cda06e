package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/pkg/uid"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	ChooseMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

// GameManager runs human-versus-computer sessions. Every turn is saved, so an unfinished
// session can be resumed; a finished one is removed from storage.
type GameManager struct {
	logger *slog.Logger

	gameRepo gameRepo
	bot      botService
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		bot:      bot,
	}
}

func (that *GameManager) StartGame(ctx context.Context, human entity.Mark, difficulty entity.Difficulty) (*entity.Game, error) {
	if !human.IsPlayer() {
		return nil, fmt.Errorf("%w: human must play X or O", apperror.ErrUnknownMark)
	}

	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownDifficulty, difficulty)
	}

	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game := entity.NewGame(gameID, human, difficulty)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game started", "gameID", game.ID, "human", human.String(), "difficulty", difficulty.String())

	return game, nil
}

func (that *GameManager) ResumeGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// HumanTurn plays cell for the human. A rejected move leaves the stored session as it was.
func (that *GameManager) HumanTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	game, err := that.ResumeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(game.Human, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.saveTurn(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) ComputerTurn(ctx context.Context, gameID string) (*entity.Game, error) {
	log := that.logger.With("method", "ComputerTurn", "gameID", gameID)

	game, err := that.ResumeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		return game, apperror.ErrGameFinished
	}

	if !game.IsComputerTurn() {
		return game, apperror.ErrNotYourTurn
	}

	cell, err := that.bot.ChooseMove(game.Board, game.Computer, game.Difficulty)
	if err != nil {
		return game, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = game.MakeTurn(game.Computer, cell); err != nil {
		return game, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("computer moved", "cell", cell)

	if err = that.saveTurn(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game ended", "gameID", gameID)

	return nil
}

// saveTurn keeps an ongoing game and drops a finished one.
func (that *GameManager) saveTurn(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return that.updateGame(ctx, game)
	}

	that.logger.Info("game finished", "gameID", game.ID, "outcome", game.Outcome.String())

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		return fmt.Errorf("failed to delete finished game: %w", err)
	}

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
