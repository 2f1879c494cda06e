package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// mediumSearchChance is the probability that Medium plays the searched move.
const mediumSearchChance = 0.5

// Randomizer is satisfied by *math/rand/v2.Rand.
type Randomizer interface {
	IntN(n int) int
	Float64() float64
}

type BotService interface {
	ChooseMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	random Randomizer
}

func NewBotService(random Randomizer) BotService {
	return &botService{
		random: random,
	}
}

// ChooseMove picks the computer's cell. Callers check for a finished game first.
func (that *botService) ChooseMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	switch difficulty {
	case entity.EasyDifficulty:
		return that.randomCell(availableCells), nil
	case entity.MediumDifficulty:
		if board.IsEmpty() || that.random.Float64() >= mediumSearchChance {
			return that.randomCell(availableCells), nil
		}
		return that.searchCell(board, mark, availableCells), nil
	case entity.HardDifficulty:
		// all openings draw under perfect play
		if board.IsEmpty() {
			return that.randomCell(availableCells), nil
		}
		return that.searchCell(board, mark, availableCells), nil
	default:
		return 0, fmt.Errorf("%w: %d", apperror.ErrUnknownDifficulty, difficulty)
	}
}

func (that *botService) randomCell(availableCells []int) int {
	return availableCells[that.random.IntN(len(availableCells))]
}

// searchCell falls back to a random cell when the board is already decided.
func (that *botService) searchCell(board entity.Board, mark entity.Mark, availableCells []int) int {
	if _, move, ok := Minimax(board, mark); ok {
		return move
	}

	return that.randomCell(availableCells)
}
