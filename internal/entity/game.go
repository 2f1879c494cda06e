package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one human-versus-computer session.
type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Turn       Mark       `json:"player_turn"`
	Human      Mark       `json:"human"`
	Computer   Mark       `json:"computer"`
	Difficulty Difficulty `json:"difficulty"`
	Status     string     `json:"status"`
	Outcome    Outcome    `json:"outcome"`
}

// NewGame - X always opens, whoever plays it.
func NewGame(id string, human Mark, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Board:      NewBoard(),
		Turn:       PlayerX,
		Human:      human,
		Computer:   SwitchPlayer(human),
		Difficulty: difficulty,
		Status:     StatusOngoing,
		Outcome:    NoneYet,
	}
}

func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.ApplyMove(cell, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.UpdateGameState()

	return nil
}

// UpdateGameState recomputes the outcome from the board and passes the turn on.
func (that *Game) UpdateGameState() {
	that.Outcome = that.Board.Winner()

	if that.Outcome.IsTerminal() {
		that.Status = StatusFinished
		that.Turn = Empty
		return
	}

	that.Status = StatusOngoing
	that.Turn = SwitchPlayer(that.Turn)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsComputerTurn() bool {
	return !that.IsFinished() && that.Turn == that.Computer
}

func (that *Game) IsHumanTurn() bool {
	return !that.IsFinished() && that.Turn == that.Human
}

func (that *Game) ResultMessage() string {
	switch that.Outcome {
	case PlayerXWins:
		return "Player X wins!"
	case PlayerOWins:
		return "Player O wins!"
	case Draw:
		return "It's a draw"
	default:
		return ""
	}
}
