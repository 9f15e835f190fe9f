// Package parse turns user-supplied puzzle text into validated boards.
//
// Two input forms are supported: a contiguous digit string such as
// "123405786" (single-digit tiles, so 3x3 at most), and a stream of one
// number per line terminated by a blank line or EOF, which handles any
// supported board size. Both forms reject anything that does not decode
// into a valid board.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tilegame/slidesolver/puzzle/board"
)

// Digits decodes a contiguous string of digit characters into a board,
// one digit per cell in row-major order.
func Digits(s string) (board.Board, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return board.Board{}, fmt.Errorf("empty puzzle string")
	}

	cells := make([]uint8, 0, len(trimmed))
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return board.Board{}, fmt.Errorf("invalid character %q in puzzle string", r)
		}
		cells = append(cells, uint8(r-'0'))
	}

	b, err := board.New(cells)
	if err != nil {
		return board.Board{}, fmt.Errorf("invalid puzzle %q: %w", trimmed, err)
	}
	return b, nil
}

// Lines reads one cell value per line in row-major order until a blank
// line or EOF, then validates the collected sequence as a board.
func Lines(r io.Reader) (board.Board, error) {
	var cells []uint8

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		value, err := strconv.ParseUint(line, 10, 8)
		if err != nil {
			return board.Board{}, fmt.Errorf("line %d: %q is not a cell value", len(cells)+1, line)
		}
		cells = append(cells, uint8(value))
	}
	if err := scanner.Err(); err != nil {
		return board.Board{}, fmt.Errorf("reading puzzle: %w", err)
	}

	b, err := board.New(cells)
	if err != nil {
		return board.Board{}, fmt.Errorf("invalid puzzle: %w", err)
	}
	return b, nil
}

// Cells converts the wire form of a cell sequence (JSON numbers) into the
// byte form board.New expects, rejecting out-of-range values.
func Cells(values []int) ([]uint8, error) {
	cells := make([]uint8, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("cell %d: value %d out of range", i, v)
		}
		cells[i] = uint8(v)
	}
	return cells, nil
}

// Moves decodes a slice of move names into a move sequence.
func Moves(names []string) ([]board.Move, error) {
	moves := make([]board.Move, len(names))
	for i, name := range names {
		m, err := board.ParseMove(name)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves[i] = m
	}
	return moves, nil
}
