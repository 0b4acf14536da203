// board.go
package main

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid indexed [row][col]. It is a value: assigning it copies every cell.
type Board [BoardSize][BoardSize]Cell

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black

	return b
}

// OnBoard reports whether (row, col) lies inside the grid.
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// At returns the cell at (row, col). Off-board access panics.
func (b *Board) At(row, col int) Cell {
	mustOnBoard(row, col)

	return b[row][col]
}

// Set stores c at (row, col). Off-board access panics.
func (b *Board) Set(row, col int, c Cell) {
	mustOnBoard(row, col)
	b[row][col] = c
}

func mustOnBoard(row, col int) {
	if !OnBoard(row, col) {
		panic(fmt.Sprintf("cell (%d,%d) is off the board", row, col))
	}
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == c {
				n++
			}
		}
	}

	return n
}

// Inverted returns a copy with Black and White swapped.
func (b Board) Inverted() Board {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] != Empty {
				b[row][col] = b[row][col].Opponent()
			}
		}
	}

	return b
}

func cellSymbol(c Cell) byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(cellSymbol(b[row][col]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ParseBoard reads the format produced by String: eight rows of '.', 'X' and 'O'.
// Blank lines and surrounding whitespace are ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	row := 0

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row == BoardSize {
			return Board{}, fmt.Errorf("too many rows")
		}
		if len(line) != BoardSize {
			return Board{}, fmt.Errorf("row %d: want %d cells, got %d", row, BoardSize, len(line))
		}
		for col := 0; col < BoardSize; col++ {
			switch line[col] {
			case '.':
				b[row][col] = Empty
			case 'X':
				b[row][col] = Black
			case 'O':
				b[row][col] = White
			default:
				return Board{}, fmt.Errorf("row %d: unexpected %q", row, line[col])
			}
		}
		row++
	}

	if row != BoardSize {
		return Board{}, fmt.Errorf("want %d rows, got %d", BoardSize, row)
	}

	return b, nil
}
