package apperror

import "errors"

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrNoLegalMove       = errors.New("no legal move left")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrGameNotFound      = errors.New("game not found")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMark       = errors.New("unknown mark")
)
