package main

// BestMove picks the move with the highest immediate capture count.
// Ties go to the earliest move in row-major order. ok is false when the
// player to move has no legal move.
func (g *Game) BestMove() (best ScoredMove, ok bool) {
	for _, move := range g.ValidMoves() {
		if !ok || move.Score > best.Score {
			best, ok = move, true
		}
	}

	return best, ok
}

// bestReplyScore is the opponent's greedy score on g, or noMoveScore if they must pass.
func (g *Game) bestReplyScore() int {
	reply, ok := g.BestMove()
	if !ok {
		return noMoveScore
	}

	return reply.Score
}

// SmartMove looks one reply ahead: every legal move is tried on a copy of
// the game and valued as its own capture count minus the opponent's best
// immediate capture in the resulting position. A move that leaves the
// opponent without a reply outranks any move that does not. The returned
// Score is that lookahead value. ok is false when there is nothing to play.
func (g *Game) SmartMove() (best ScoredMove, ok bool) {
	for _, move := range g.ValidMoves() {
		next := g.SimulateMove(move.Move)
		value := move.Score - next.bestReplyScore()

		if !ok || value > best.Score {
			best, ok = ScoredMove{Move: move.Move, Score: value}, true
		}
	}

	return best, ok
}

// AIMove plays the lookahead choice, or passes when there is none.
// It reports the move played and whether one was played at all.
func (g *Game) AIMove() (Move, bool) {
	choice, ok := g.SmartMove()
	if !ok {
		g.Pass()

		return Move{}, false
	}

	debugLog.Printf("%s plays %d (lookahead %d)", g.current, choice.Index(), choice.Score)
	g.MakeMove(choice.Move)

	return choice.Move, true
}
