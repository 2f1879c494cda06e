package entity

// Outcome is derived from the board contents and never stored on the board.
type Outcome int8

const (
	NoneYet Outcome = iota
	PlayerXWins
	PlayerOWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case PlayerXWins:
		return "x_wins"
	case PlayerOWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// IsTerminal reports whether the game can't continue.
func (that Outcome) IsTerminal() bool {
	return that != NoneYet
}

// Mark returns the winner's mark, or Empty for a draw or an unfinished game.
func (that Outcome) Mark() Mark {
	switch that {
	case PlayerXWins:
		return PlayerX
	case PlayerOWins:
		return PlayerO
	default:
		return Empty
	}
}

// OutcomeFor - the win outcome of the given mark.
func OutcomeFor(mark Mark) Outcome {
	switch mark {
	case PlayerX:
		return PlayerXWins
	case PlayerO:
		return PlayerOWins
	default:
		return NoneYet
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "x_wins":
		*that = PlayerXWins
	case "o_wins":
		*that = PlayerOWins
	case "draw":
		*that = Draw
	default:
		*that = NoneYet
	}

	return nil
}
