package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: a human picks O on hard
	game := NewGame("123", PlayerO, HardDifficulty)

	// Then: X opens and the computer plays X
	expectedGame := &Game{
		ID:         "123",
		Board:      NewBoard(),
		Turn:       PlayerX,
		Human:      PlayerO,
		Computer:   PlayerX,
		Difficulty: HardDifficulty,
		Status:     StatusOngoing,
		Outcome:    NoneYet,
	}

	require.Equal(t, expectedGame, game)
	assert.True(t, game.IsComputerTurn())
	assert.False(t, game.IsHumanTurn())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", PlayerX, EasyDifficulty)

		// When: player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: the board should reflect the turn and the turn should pass to O
		assert.Equal(t, Board{x, e, e, e, e, e, e, e, e}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, NoneYet, game.Outcome)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where cell 0 is occupied by player X
		game := NewGame("123", PlayerX, EasyDifficulty)
		require.NoError(t, game.MakeTurn(PlayerX, 0))
		before := *game

		// When: player O tries to make a move to the same cell
		err := game.MakeTurn(PlayerO, 0)

		// Then: an ErrIllegalMove error should be returned and the game should remain unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.Equal(t, before, *game)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: a new game where it's player X's turn
		game := NewGame("123", PlayerX, EasyDifficulty)

		// When: player O tries to make a move
		err := game.MakeTurn(PlayerO, 1)

		// Then: an ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.True(t, game.Board.IsEmpty())
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame("123", PlayerX, EasyDifficulty)

		for _, cell := range []int{-1, 20} {
			err := game.MakeTurn(PlayerX, cell)

			assert.ErrorIs(t, err, apperror.ErrIllegalMove)
		}
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Winning turn finishes the game", func(t *testing.T) {
		// Given: X is one move away from the top row
		game := NewGame("123", PlayerX, EasyDifficulty)
		game.Board = Board{x, x, e, o, o, e, e, e, e}

		// When: X completes the row
		err := game.MakeTurn(PlayerX, 2)

		// Then: the game is finished with X as the winner
		require.NoError(t, err)
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerXWins, game.Outcome)
		assert.Equal(t, Empty, game.Turn)
		assert.Equal(t, "Player X wins!", game.ResultMessage())
	})

	t.Run("Last turn without a line is a draw", func(t *testing.T) {
		// Given: one free cell left and no line possible
		game := NewGame("123", PlayerO, EasyDifficulty)
		game.Board = Board{x, o, x, o, x, o, o, x, e}
		game.Turn = PlayerO

		// When: O fills the last cell
		err := game.MakeTurn(PlayerO, 8)

		// Then: the game ends in a draw
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, Draw, game.Outcome)
		assert.Equal(t, "It's a draw", game.ResultMessage())
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player O has already won
		game := NewGame("123", PlayerX, EasyDifficulty)
		game.Board = Board{o, o, o, x, x, e, x, e, e}
		game.UpdateGameState()
		require.Equal(t, "Player O wins!", game.ResultMessage())

		// When: player X tries to make a move after the game has finished
		err := game.MakeTurn(PlayerX, 5)

		// Then: an ErrGameFinished error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_JSON(t *testing.T) {
	// Given: a game in progress
	game := NewGame("abc", PlayerO, MediumDifficulty)
	require.NoError(t, game.MakeTurn(PlayerX, 4))

	// When: it goes through JSON
	data, err := json.Marshal(game)
	require.NoError(t, err)

	var restored Game
	require.NoError(t, json.Unmarshal(data, &restored))

	// Then: marks and enums are written as text and read back unchanged
	assert.Contains(t, string(data), `"board":["","","","","X","","","",""]`)
	assert.Contains(t, string(data), `"difficulty":"medium"`)
	assert.Equal(t, *game, restored)
}
