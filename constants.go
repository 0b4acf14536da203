package main

// Cell is the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

const BoardSize = 8

// noMoveScore ranks below any real capture score.
const noMoveScore = -BoardSize * BoardSize * BoardSize * BoardSize

// Directions for walking capture rays
var directions = [8]struct{ dr, dc int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Opponent returns the other colour. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}
