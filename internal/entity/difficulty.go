package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Difficulty selects how the computer picks its moves. It has no bearing on the board.
type Difficulty int8

const (
	EasyDifficulty Difficulty = iota + 1
	MediumDifficulty
	HardDifficulty
)

func (that Difficulty) String() string {
	switch that {
	case EasyDifficulty:
		return "easy"
	case MediumDifficulty:
		return "medium"
	case HardDifficulty:
		return "hard"
	default:
		return "unknown"
	}
}

func (that Difficulty) IsValid() bool {
	return that >= EasyDifficulty && that <= HardDifficulty
}

func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy":
		return EasyDifficulty, nil
	case "medium":
		return MediumDifficulty, nil
	case "hard":
		return HardDifficulty, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

func (that Difficulty) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Difficulty) UnmarshalText(text []byte) error {
	difficulty, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}

	*that = difficulty
	return nil
}
