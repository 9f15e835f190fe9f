package board

import "testing"

func TestMove_Reverse(t *testing.T) {
	tests := []struct {
		move Move
		want Move
	}{
		{Left, Right},
		{Right, Left},
		{Up, Down},
		{Down, Up},
	}

	for _, test := range tests {
		t.Run(test.move.String(), func(t *testing.T) {
			if got := test.move.Reverse(); got != test.want {
				t.Errorf("Reverse(): expected %v, got %v", test.want, got)
			}
			// Reverse is an involution.
			if got := test.move.Reverse().Reverse(); got != test.move {
				t.Errorf("Reverse().Reverse(): expected %v, got %v", test.move, got)
			}
		})
	}
}

func TestAllMoves(t *testing.T) {
	moves := AllMoves()
	if len(moves) != 4 {
		t.Fatalf("AllMoves(): expected 4 moves, got %d", len(moves))
	}

	seen := map[Move]bool{}
	for _, m := range moves {
		seen[m] = true
	}
	for _, m := range []Move{Left, Right, Up, Down} {
		if !seen[m] {
			t.Errorf("AllMoves(): missing %v", m)
		}
	}

	// Mutating the returned slice must not leak into later calls.
	moves[0] = Down
	if fresh := AllMoves(); fresh[0] != Left {
		t.Error("AllMoves(): returned slice is shared state")
	}
}

func TestParseMove(t *testing.T) {
	for _, m := range AllMoves() {
		parsed, err := ParseMove(m.String())
		if err != nil {
			t.Errorf("ParseMove(%q): unexpected error: %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("ParseMove(%q): expected %v, got %v", m.String(), m, parsed)
		}
	}

	for _, bad := range []string{"", "north", "LEFT", "lefts"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q): expected error", bad)
		}
	}
}

func TestMoveNames(t *testing.T) {
	names := MoveNames([]Move{Right, Down, Left, Up})
	want := []string{"right", "down", "left", "up"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("MoveNames[%d]: expected %q, got %q", i, want[i], names[i])
		}
	}
	if got := MoveNames(nil); len(got) != 0 {
		t.Errorf("MoveNames(nil): expected empty, got %v", got)
	}
}
