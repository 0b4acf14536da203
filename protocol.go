package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	whiteToken = "w"
	passIndex  = -1
)

var (
	ErrInvalidMove    = errors.New("invalid opponent move")
	ErrMalformedInput = errors.New("malformed input")
)

// Session plays one game over a whitespace separated text stream: the
// opponent's moves arrive on in as wire indexes (negative for a pass) and
// the engine's replies are written to out one per line.
type Session struct {
	game   Game
	engine Cell
	strict bool

	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session at the starting position. With strict set,
// opponent moves must be legal placements.
func NewSession(in io.Reader, out io.Writer, strict bool) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Session{
		game:   NewGame(),
		engine: Black,
		strict: strict,
		in:     scanner,
		out:    out,
	}
}

// Game returns a copy of the current state.
func (s *Session) Game() Game {
	return s.game
}

// Run reads the colour token and alternates engine and opponent turns until
// both pass in the same round or the input ends.
func (s *Session) Run() error {
	token, err := s.next()
	if errors.Is(err, io.EOF) {
		return nil
	} else if err != nil {
		return err
	}

	if token == whiteToken {
		s.engine = White
		if _, err := s.opponentMove(); err != nil {
			return s.finish(err)
		}
	}
	debugLog.Printf("engine plays %s", s.engine)

	for running := true; running; {
		moved, err := s.engineMove()
		if err != nil {
			return s.finish(err)
		}

		replied, err := s.opponentMove()
		if err != nil {
			return s.finish(err)
		}

		running = moved || replied
	}

	return s.finish(nil)
}

func (s *Session) finish(err error) error {
	black, white := s.game.Score()
	debugLog.Printf("game ended: black %d, white %d, winner %s\n%s", black, white, s.game.Winner(), s.game.Board())

	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func (s *Session) next() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return s.in.Text(), nil
}

// engineMove plays the engine's turn and reports it on out.
func (s *Session) engineMove() (bool, error) {
	move, ok := s.game.AIMove()

	index := passIndex
	if ok {
		index = move.Index()
	} else {
		debugLog.Printf("%s passes", s.engine)
	}

	if _, err := fmt.Fprintln(s.out, index); err != nil {
		return false, fmt.Errorf("failed to write move: %w", err)
	}

	return ok, nil
}

// opponentMove reads and applies one opponent turn.
func (s *Session) opponentMove() (bool, error) {
	token, err := s.next()
	if err != nil {
		return false, err
	}

	index, err := strconv.Atoi(token)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a move index", ErrMalformedInput, token)
	}

	if index < 0 {
		debugLog.Printf("%s passes", s.game.Turn())
		s.game.Pass()

		return false, nil
	}

	move := MoveFromIndex(index)
	if index >= BoardSize*BoardSize {
		return false, fmt.Errorf("%w: index %d is off the board", ErrInvalidMove, index)
	}
	if s.strict && !s.game.IsLegal(move) {
		return false, fmt.Errorf("%w: %d is not a legal move for %s", ErrInvalidMove, index, s.game.Turn())
	}

	debugLog.Printf("%s plays %d", s.game.Turn(), index)
	s.game.MakeMove(move)

	return true, nil
}
