package main

import "testing"

func TestBestMovePicksHighestScore(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Move
		score int
	}{
		{
			name: "best move scanned last",
			board: `
				XOOO....
				........
				........
				........
				........
				........
				........
				XOOOOO..`,
			want:  Move{7, 6},
			score: 5,
		},
		{
			name: "best move scanned first",
			board: `
				XOOOOO..
				........
				........
				........
				........
				........
				........
				XOOO....`,
			want:  Move{0, 6},
			score: 5,
		},
		{
			name: "tie goes to first in scan order",
			board: `
				XOOO....
				........
				........
				........
				........
				........
				........
				XOOO....`,
			want:  Move{0, 4},
			score: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GameFrom(mustParseBoard(t, tt.board), Black)

			got, ok := g.BestMove()
			if !ok {
				t.Fatal("BestMove found no move")
			}
			if got.Move != tt.want || got.Score != tt.score {
				t.Errorf("BestMove = %v (%d), want %v (%d)", got.Move, got.Score, tt.want, tt.score)
			}
		})
	}
}

func TestNoMove(t *testing.T) {
	b := mustParseBoard(t, `
		XXX.....
		........
		........
		........
		........
		........
		........
		........
	`)
	g := GameFrom(b, Black)

	if len(g.ValidMoves()) != 0 {
		t.Fatalf("expected no legal moves, got %v", g.ValidMoves())
	}
	if _, ok := g.BestMove(); ok {
		t.Error("BestMove reported a move")
	}
	if _, ok := g.SmartMove(); ok {
		t.Error("SmartMove reported a move")
	}

	if _, ok := g.AIMove(); ok {
		t.Error("AIMove reported a move")
	}
	if g.Turn() != White {
		t.Errorf("turn after forced pass = %s, want White", g.Turn())
	}
	if g.Board() != b {
		t.Error("forced pass changed the board")
	}
}

func TestSmartMovePrefersShuttingOutOpponent(t *testing.T) {
	// (0,3) takes 2 and leaves White without a reply.
	// (5,6) takes 4 but opens (5,3) for White, worth 3.
	b := mustParseBoard(t, `
		XOO...X.
		......O.
		......O.
		......O.
		......O.
		....XX.O
		....X...
		...X....
	`)
	g := GameFrom(b, Black)

	greedy, ok := g.BestMove()
	if !ok || greedy.Move != (Move{5, 6}) || greedy.Score != 4 {
		t.Fatalf("BestMove = %v (%d), want {5 6} (4)", greedy.Move, greedy.Score)
	}

	shutOut := g.SimulateMove(Move{0, 3})
	if _, ok := shutOut.BestMove(); ok {
		t.Fatalf("White should have no reply after (0,3):\n%s", shutOut.Board())
	}
	opened := g.SimulateMove(Move{5, 6})
	if reply, ok := opened.BestMove(); !ok || reply.Score != 3 {
		t.Fatalf("White's best reply after (5,6) = %v (%d), want score 3", reply.Move, reply.Score)
	}

	smart, ok := g.SmartMove()
	if !ok {
		t.Fatal("SmartMove found no move")
	}
	if smart.Move != (Move{0, 3}) {
		t.Errorf("SmartMove = %v, want {0 3}", smart.Move)
	}
	if want := 2 - noMoveScore; smart.Score != want {
		t.Errorf("lookahead value = %d, want %d", smart.Score, want)
	}

	if g.Board() != b || g.Turn() != Black {
		t.Error("SmartMove modified the game")
	}
}

func TestSmartMoveOpening(t *testing.T) {
	g := NewGame()

	// Every opening move takes 1 and allows a 1-disc reply; the first wins the tie.
	smart, ok := g.SmartMove()
	if !ok {
		t.Fatal("SmartMove found no move")
	}
	if smart.Index() != 19 || smart.Score != 0 {
		t.Errorf("SmartMove = %d (%d), want 19 (0)", smart.Index(), smart.Score)
	}
}

func TestAIMoveApplies(t *testing.T) {
	g := NewGame()

	move, ok := g.AIMove()
	if !ok {
		t.Fatal("AIMove passed on the opening position")
	}
	if move.Index() != 19 {
		t.Errorf("AIMove = %d, want 19", move.Index())
	}

	b := g.Board()
	if b.At(2, 3) != Black || b.At(3, 3) != Black {
		t.Errorf("AIMove did not apply (2,3):\n%s", b)
	}
	if g.Turn() != White {
		t.Errorf("turn = %s, want White", g.Turn())
	}
}
