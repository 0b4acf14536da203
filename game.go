package main

// Move is a board coordinate. On the wire it travels as Row*BoardSize+Col.
type Move struct {
	Row, Col int
}

// Index returns the wire form of m.
func (m Move) Index() int {
	return m.Row*BoardSize + m.Col
}

// MoveFromIndex decodes a wire index. The result is not range checked.
func MoveFromIndex(idx int) Move {
	return Move{Row: idx / BoardSize, Col: idx % BoardSize}
}

// ScoredMove pairs a legal move with the number of discs it captures.
type ScoredMove struct {
	Move
	Score int
}

// Game represents the game state
type Game struct {
	board   Board
	current Cell
}

// NewGame initializes a new game with the starting position
func NewGame() Game {
	return Game{
		board:   NewBoard(),
		current: Black,
	}
}

// GameFrom resumes play from an arbitrary position.
func GameFrom(b Board, turn Cell) Game {
	return Game{board: b, current: turn}
}

// Board returns a copy of the grid.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the colour to move.
func (g *Game) Turn() Cell {
	return g.current
}

// Pass hands the turn to the opponent without touching the board.
func (g *Game) Pass() {
	g.current = g.current.Opponent()
}

// walk casts the eight capture rays from (row, col) for the player to move.
// It returns the number of opponent discs that would be flanked, calling
// visit (when non-nil) for each of them.
func (g *Game) walk(row, col int, visit func(r, c int)) int {
	player := g.current
	opponent := player.Opponent()
	total := 0

	for _, dir := range directions {
		var ray [BoardSize][2]int
		n := 0
		r, c := row+dir.dr, col+dir.dc

		for OnBoard(r, c) && g.board[r][c] == opponent {
			ray[n] = [2]int{r, c}
			n++
			r += dir.dr
			c += dir.dc
		}

		if n == 0 || !OnBoard(r, c) || g.board[r][c] != player {
			continue
		}

		total += n
		if visit != nil {
			for _, cell := range ray[:n] {
				visit(cell[0], cell[1])
			}
		}
	}

	return total
}

// MoveScore returns how many discs the player to move would capture at m.
// Occupied cells score 0.
func (g *Game) MoveScore(m Move) int {
	if g.board.At(m.Row, m.Col) != Empty {
		return 0
	}

	return g.walk(m.Row, m.Col, nil)
}

// IsLegal reports whether m captures at least one disc.
func (g *Game) IsLegal(m Move) bool {
	return OnBoard(m.Row, m.Col) && g.MoveScore(m) > 0
}

// Flips returns the cells that would change colour if the player to move played m.
func (g *Game) Flips(m Move) []Move {
	var flips []Move
	g.walk(m.Row, m.Col, func(r, c int) {
		flips = append(flips, Move{Row: r, Col: c})
	})

	return flips
}

// MakeMove places a disc for the player to move, flips every flanked
// disc and passes the turn. The caller guarantees m is legal.
func (g *Game) MakeMove(m Move) {
	player := g.current

	g.walk(m.Row, m.Col, func(r, c int) {
		g.board[r][c] = player
	})
	g.board.Set(m.Row, m.Col, player)

	g.Pass()
}

// SimulateMove returns the state after m, leaving g untouched.
func (g Game) SimulateMove(m Move) Game {
	g.MakeMove(m)

	return g
}

// ValidMoves lists the legal moves for the player to move in row-major order.
func (g *Game) ValidMoves() []ScoredMove {
	var moves []ScoredMove
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if g.board[row][col] != Empty {
				continue
			}
			if score := g.walk(row, col, nil); score > 0 {
				moves = append(moves, ScoredMove{Move: Move{Row: row, Col: col}, Score: score})
			}
		}
	}

	return moves
}

// HasMoves reports whether player has any legal move, regardless of whose turn it is.
func (g *Game) HasMoves(player Cell) bool {
	probe := Game{board: g.board, current: player}

	return len(probe.ValidMoves()) > 0
}

// IsGameOver is true when neither colour can move.
func (g *Game) IsGameOver() bool {
	return !g.HasMoves(Black) && !g.HasMoves(White)
}

// Score returns the disc counts.
func (g *Game) Score() (int, int) {
	return g.board.Count(Black), g.board.Count(White)
}

// Winner returns the colour with more discs, or Empty on a draw.
func (g *Game) Winner() Cell {
	black, white := g.Score()

	if black > white {
		return Black
	} else if white > black {
		return White
	}

	return Empty
}
