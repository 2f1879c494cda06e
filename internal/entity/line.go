package entity

// LineKind tells a renderer which way a winning line runs.
type LineKind int8

const (
	Row LineKind = iota
	Column
	Diagonal     // top-left to bottom-right
	AntiDiagonal // top-right to bottom-left
)

func (that LineKind) String() string {
	switch that {
	case Row:
		return "row"
	case Column:
		return "column"
	case Diagonal:
		return "diagonal"
	default:
		return "anti-diagonal"
	}
}

// Point is a grid coordinate, both values in 0..2.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Line is one of the 8 index triples that win when uniformly occupied.
type Line struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"` // ordinal within Kind: row or column number, 0 for diagonals
	Cells [3]int   `json:"cells"`
}

// Start is the grid coordinate of the first cell, End of the last one.
// A renderer draws the strikethrough between the two.
func (that Line) Start() Point {
	return pointOf(that.Cells[0])
}

func (that Line) End() Point {
	return pointOf(that.Cells[2])
}

func pointOf(index int) Point {
	return Point{Row: index / Size, Col: index % Size}
}

// WinCombos - rows top to bottom, columns left to right, then the two diagonals.
var WinCombos = [8]Line{
	{Kind: Row, Index: 0, Cells: [3]int{0, 1, 2}},
	{Kind: Row, Index: 1, Cells: [3]int{3, 4, 5}},
	{Kind: Row, Index: 2, Cells: [3]int{6, 7, 8}},
	{Kind: Column, Index: 0, Cells: [3]int{0, 3, 6}},
	{Kind: Column, Index: 1, Cells: [3]int{1, 4, 7}},
	{Kind: Column, Index: 2, Cells: [3]int{2, 5, 8}},
	{Kind: Diagonal, Index: 0, Cells: [3]int{0, 4, 8}},
	{Kind: AntiDiagonal, Index: 0, Cells: [3]int{2, 4, 6}},
}
