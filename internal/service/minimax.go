package service

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const winScore = 10

// Minimax searches the whole remaining game tree for mark and returns the position's score
// (positive favours X, negative favours O) together with the best move for mark.
// ok is false when the board is already terminal and there is nothing to play.
//
// Among equally scored moves the lowest index is kept.
func Minimax(board entity.Board, mark entity.Mark) (score, move int, ok bool) {
	if outcome := board.Winner(); outcome.IsTerminal() {
		return outcomeScore(outcome, board), 0, false
	}

	multiplier := sign(mark)
	bestScore := math.MinInt
	bestMove := -1

	for _, cell := range board.EmptyCells() {
		next := board.Clone()
		if err := next.ApplyMove(cell, mark); err != nil {
			continue
		}

		childScore, _, _ := Minimax(next, entity.SwitchPlayer(mark))

		if thisScore := multiplier * childScore; thisScore > bestScore {
			bestScore = thisScore
			bestMove = cell
		}
	}

	if bestMove < 0 {
		return 0, 0, false
	}

	return multiplier * bestScore, bestMove, true
}

// outcomeScore - each free cell left adds one point to a win.
func outcomeScore(outcome entity.Outcome, board entity.Board) int {
	bonus := len(board.EmptyCells())

	switch outcome {
	case entity.PlayerXWins:
		return winScore + bonus
	case entity.PlayerOWins:
		return -(winScore + bonus)
	default:
		return 0
	}
}

func sign(mark entity.Mark) int {
	if mark == entity.PlayerO {
		return -1
	}
	return 1
}
