package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// firstEmptyBot always plays the lowest free cell.
type firstEmptyBot struct{}

func (firstEmptyBot) ChooseMove(board entity.Board, _ entity.Mark, _ entity.Difficulty) (int, error) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	return cells[0], nil
}

func newTestServer(t *testing.T, gameRepo repository.GameRepository, input string) (*Server, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, gameRepo, firstEmptyBot{})
	out := &bytes.Buffer{}

	return New(logger, manager, strings.NewReader(input), out), out
}

func TestServer_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Human wins as X", func(t *testing.T) {
		// Given: the human picks X and plays 5, 3, 7 against a bot taking 1 and 2
		server, out := newTestServer(t, repository.NewMemoryGameRepository(), "X\n5\n3\n7\nn\n")

		// When: the console runs
		err := server.Start(ctx, Options{Difficulty: entity.HardDifficulty})

		// Then: the anti-diagonal should win for X
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Play as X or O?")
		assert.Contains(t, out.String(), "Player X wins!")
		assert.Contains(t, out.String(), "Winning line: anti-diagonal, cells 3, 5, 7")
		assert.Contains(t, out.String(), "Start over?")
	})

	t.Run("Computer opens when the human plays O", func(t *testing.T) {
		// Given: the bot as X takes 1, 2 and 4 while the human plays 5, 3, 7
		server, out := newTestServer(t, repository.NewMemoryGameRepository(), "5\n3\n7\n")

		// When: the console runs with the mark preset
		err := server.Start(ctx, Options{HumanMark: entity.PlayerO, Difficulty: entity.EasyDifficulty})

		// Then: O should win and no mark prompt is shown
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "Play as X or O?")
		assert.Contains(t, out.String(), "Computer is thinking...")
		assert.Contains(t, out.String(), "Player O wins!")
	})

	t.Run("Rejects bad input and occupied cells", func(t *testing.T) {
		server, out := newTestServer(t, repository.NewMemoryGameRepository(), "Z\nX\n5\n5\n1\nten\n")

		err := server.Start(ctx, Options{Difficulty: entity.HardDifficulty})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Please type X or O.")
		assert.Contains(t, out.String(), "Cell 5 is already taken.")
		assert.Contains(t, out.String(), "Cell 1 is already taken.")
		assert.Contains(t, out.String(), "Please enter a number from 1 to 9.")
	})

	t.Run("Start over asks for the mark again", func(t *testing.T) {
		server, out := newTestServer(t, repository.NewMemoryGameRepository(), "X\n5\n3\n7\ny\nO\n")

		err := server.Start(ctx, Options{Difficulty: entity.HardDifficulty})

		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "Play as X or O?"))
		assert.Contains(t, out.String(), "You play O")
	})

	t.Run("Quit keeps the game for resume", func(t *testing.T) {
		// Given: the human plays one move and quits
		gameRepo := repository.NewMemoryGameRepository()
		server, out := newTestServer(t, gameRepo, "X\n5\nq\n")

		require.NoError(t, server.Start(ctx, Options{Difficulty: entity.HardDifficulty}))

		gameID := resumeID(t, out.String())
		saved, err := gameRepo.GetByID(ctx, gameID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, saved.Board[4])
		assert.Equal(t, entity.PlayerO, saved.Board[0])

		// When: a new console resumes the saved game
		resumed, out := newTestServer(t, gameRepo, "3\n7\n")
		err = resumed.Start(ctx, Options{ResumeID: gameID, Difficulty: entity.HardDifficulty})

		// Then: play continues from the saved board and the finished game is removed
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Resuming game "+gameID)
		assert.Contains(t, out.String(), "Player X wins!")

		_, err = gameRepo.GetByID(ctx, gameID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Unknown resume id starts a new game", func(t *testing.T) {
		server, out := newTestServer(t, repository.NewMemoryGameRepository(), "")

		err := server.Start(ctx, Options{ResumeID: "gone", HumanMark: entity.PlayerX, Difficulty: entity.EasyDifficulty})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "No saved game gone, starting a new one.")
		assert.Contains(t, out.String(), "Your move")
	})

	t.Run("Cancelled context stops the computer's pause", func(t *testing.T) {
		server, _ := newTestServer(t, repository.NewMemoryGameRepository(), "")

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := server.Start(cancelled, Options{HumanMark: entity.PlayerO, Difficulty: entity.HardDifficulty, ComputerDelay: time.Hour})

		require.NoError(t, err)
	})
}

func resumeID(t *testing.T, output string) string {
	t.Helper()

	const marker = "--resume "

	at := strings.LastIndex(output, marker)
	require.NotEqual(t, -1, at, "no resume hint in output")

	return strings.Fields(output[at+len(marker):])[0]
}
