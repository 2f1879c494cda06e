package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const rowSeparator = "---+---+---"

// renderBoard draws the grid; an empty cell shows the number that plays it.
func renderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := range entity.Size {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, entity.Size)
		for col := range entity.Size {
			index := row*entity.Size + col

			cells[col] = board[index].String()
			if cells[col] == "" {
				cells[col] = strconv.Itoa(index + 1)
			}
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// describeLine names a line the way a player counts: rows, columns and cells from 1.
func describeLine(line entity.Line) string {
	start, end := line.Start(), line.End()
	cells := fmt.Sprintf("cells %d, %d, %d", line.Cells[0]+1, line.Cells[1]+1, line.Cells[2]+1)
	span := fmt.Sprintf("from (%d,%d) to (%d,%d)", start.Row+1, start.Col+1, end.Row+1, end.Col+1)

	switch line.Kind {
	case entity.Row, entity.Column:
		return fmt.Sprintf("%s %d, %s, %s", line.Kind, line.Index+1, cells, span)
	default:
		return fmt.Sprintf("%s, %s, %s", line.Kind, cells, span)
	}
}
