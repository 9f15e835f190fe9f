package board

import "fmt"

// Move is one of the four directions the hole can travel. Left means the
// tile to the left of the hole slides right into it, and so on.
type Move uint8

const (
	Left Move = iota
	Right
	Up
	Down
)

var moveNames = [...]string{
	Left:  "left",
	Right: "right",
	Up:    "up",
	Down:  "down",
}

// AllMoves returns the full move set. It returns a fresh slice so callers
// can reorder or restrict it without affecting anyone else.
func AllMoves() []Move {
	return []Move{Left, Right, Up, Down}
}

// Reverse returns the opposite move. Applying a move and then its reverse
// restores the original board.
func (m Move) Reverse() Move {
	switch m {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// String returns the lowercase move name used across the API and CLI.
func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return fmt.Sprintf("move(%d)", uint8(m))
}

// ParseMove converts a move name back into a Move.
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if s == name {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("unknown move %q (want left, right, up or down)", s)
}

// MoveNames converts a move sequence into the wire form used by the
// transports, one name per move.
func MoveNames(moves []Move) []string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return names
}
