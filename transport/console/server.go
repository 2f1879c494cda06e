package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errQuit = errors.New("player quit")

type uGame interface {
	StartGame(ctx context.Context, human entity.Mark, difficulty entity.Difficulty) (*entity.Game, error)
	ResumeGame(ctx context.Context, gameID string) (*entity.Game, error)

	HumanTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	ComputerTurn(ctx context.Context, gameID string) (*entity.Game, error)
}

// Options preset what the console would otherwise ask for.
type Options struct {
	HumanMark     entity.Mark // Empty: ask
	Difficulty    entity.Difficulty
	ComputerDelay time.Duration
	ResumeID      string
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	out   io.Writer
	lines chan string
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		out:   out,
		lines: make(chan string),
	}

	go server.scan(in)

	return server
}

// Start plays games until the player declines to start over, quits, input ends or ctx is done.
func (that *Server) Start(ctx context.Context, options Options) error {
	log := that.logger.With("method", "Start")

	for {
		game, err := that.openGame(ctx, options)
		if err != nil {
			return that.stopped(err)
		}

		log.Info("playing game", "gameID", game.ID)

		if err = that.playGame(ctx, game, options.ComputerDelay); err != nil {
			return that.stopped(err)
		}

		again, err := that.askStartOver(ctx)
		if err != nil || !again {
			return that.stopped(err)
		}

		options.ResumeID = ""
	}
}

// openGame resumes options.ResumeID when it is still stored, otherwise starts a new game.
func (that *Server) openGame(ctx context.Context, options Options) (*entity.Game, error) {
	if options.ResumeID != "" {
		game, err := that.uGame.ResumeGame(ctx, options.ResumeID)
		if err == nil {
			that.printf("Resuming game %s.\n", game.ID)
			return game, nil
		}

		if !errors.Is(err, apperror.ErrGameNotFound) {
			return nil, err
		}

		that.printf("No saved game %s, starting a new one.\n", options.ResumeID)
	}

	human := options.HumanMark
	if !human.IsPlayer() {
		var err error
		if human, err = that.askMark(ctx); err != nil {
			return nil, err
		}
	}

	return that.uGame.StartGame(ctx, human, options.Difficulty)
}

func (that *Server) playGame(ctx context.Context, game *entity.Game, delay time.Duration) error {
	that.printf("You play %s against the computer (%s).\n", game.Human, game.Difficulty)

	var err error

	for !game.IsFinished() {
		that.printf("\n%s\n", renderBoard(game.Board))

		if game.IsComputerTurn() {
			game, err = that.computerTurn(ctx, game.ID, delay)
		} else {
			game, err = that.humanTurn(ctx, game)
		}

		if err != nil {
			return err
		}
	}

	that.printf("\n%s\n%s\n", renderBoard(game.Board), game.ResultMessage())

	if line, ok := game.Board.WinningLine(); ok {
		that.printf("Winning line: %s\n", describeLine(line))
	}

	return nil
}

func (that *Server) computerTurn(ctx context.Context, gameID string, delay time.Duration) (*entity.Game, error) {
	that.printf("Computer is thinking...\n")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(delay):
	}

	return that.uGame.ComputerTurn(ctx, gameID)
}

// humanTurn prompts until the player makes a legal move or quits.
func (that *Server) humanTurn(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	for {
		that.printf("Your move (1-9, q to quit): ")

		line, err := that.readLine(ctx)
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(line, "q") {
			that.printf("Game saved. Resume it with --resume %s\n", game.ID)
			return nil, errQuit
		}

		cell, err := strconv.Atoi(line)
		if err != nil || cell < 1 || cell > entity.Cells {
			that.printf("Please enter a number from 1 to 9.\n")
			continue
		}

		next, err := that.uGame.HumanTurn(ctx, game.ID, cell-1)
		if errors.Is(err, apperror.ErrIllegalMove) {
			that.printf("Cell %d is already taken.\n", cell)
			continue
		}

		if err != nil {
			return nil, err
		}

		return next, nil
	}
}

func (that *Server) askMark(ctx context.Context) (entity.Mark, error) {
	for {
		that.printf("Play as X or O? ")

		line, err := that.readLine(ctx)
		if err != nil {
			return entity.Empty, err
		}

		mark, err := entity.ParseMark(line)
		if err == nil {
			return mark, nil
		}

		that.printf("Please type X or O.\n")
	}
}

func (that *Server) askStartOver(ctx context.Context) (bool, error) {
	that.printf("Start over? [y/N] ")

	line, err := that.readLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// stopped maps the ways a session can end on purpose to a nil error.
func (that *Server) stopped(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errQuit), errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		that.logger.Info("console stopped", "reason", err.Error())
		return nil
	default:
		that.logger.Error("console failed", "error", err)
		return err
	}
}

func (that *Server) scan(in io.Reader) {
	defer close(that.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		that.lines <- strings.TrimSpace(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		that.logger.Error("failed to read input", "error", err)
	}
}

func (that *Server) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		return line, nil
	}
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
