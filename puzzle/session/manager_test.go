package session

import (
	"errors"
	"testing"
	"time"

	"github.com/tilegame/slidesolver/puzzle/board"
)

func testBoards(t *testing.T) (board.Board, board.Board) {
	t.Helper()
	start, err := board.New([]uint8{1, 2, 3, 4, 0, 5, 7, 8, 6})
	if err != nil {
		t.Fatalf("build start board: %v", err)
	}
	goal, err := board.Solved(3)
	if err != nil {
		t.Fatalf("build goal board: %v", err)
	}
	return start, goal
}

func TestCreate_GeneratesID(t *testing.T) {
	m := NewManager()
	start, goal := testBoards(t)

	sess, err := m.Create("", start, goal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(sess.ID) != 4 {
		t.Errorf("expected 4-character session ID, got %q", sess.ID)
	}
	if sess.Start != start || sess.Goal != goal {
		t.Error("session boards do not match the requested boards")
	}
	if sess.Result != nil {
		t.Error("new session must start unsolved")
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 session, got %d", m.Count())
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	m := NewManager()
	start, goal := testBoards(t)

	if _, err := m.Create("ab12", start, goal); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := m.Create("AB12", start, goal); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("expected ErrSessionAlreadyExists for case-variant duplicate, got %v", err)
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	m := NewManager()
	start, goal := testBoards(t)

	created, err := m.Create("AbCd", start, goal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := m.Get("ABCD")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != created {
		t.Error("expected the same session back")
	}

	if _, err := m.Get("ffff"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetOrCreate(t *testing.T) {
	m := NewManager()
	start, goal := testBoards(t)

	created, err := m.GetOrCreate("ab12", start, goal)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if created.ID != "ab12" {
		t.Errorf("expected session ab12, got %q", created.ID)
	}

	// A second call with the same ID returns the existing session
	// instead of creating another.
	got, err := m.GetOrCreate("AB12", start, goal)
	if err != nil {
		t.Fatalf("GetOrCreate (existing): %v", err)
	}
	if got != created {
		t.Error("expected the existing session back")
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 session, got %d", m.Count())
	}
}

func TestDelete(t *testing.T) {
	m := NewManager()
	start, goal := testBoards(t)

	sess, err := m.Create("", start, goal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := m.Delete(sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected session to be gone, got %v", err)
	}
	if err := m.Delete(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestUpdateLastAccessed(t *testing.T) {
	m := NewManager()
	start, goal := testBoards(t)

	sess, err := m.Create("", start, goal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	before := sess.LastAccessedAt
	time.Sleep(5 * time.Millisecond)
	if err := m.UpdateLastAccessed(sess.ID); err != nil {
		t.Fatalf("UpdateLastAccessed: %v", err)
	}
	if !sess.LastAccessedAt.After(before) {
		t.Error("expected LastAccessedAt to advance")
	}

	if err := m.UpdateLastAccessed("ffff"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	m := NewManager()
	start, goal := testBoards(t)

	stale, err := m.Create("old1", start, goal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := m.Create("new1", start, goal); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := m.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("expected 1 removed session, got %d", removed)
	}
	if _, err := m.Get("old1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected stale session to be gone, got %v", err)
	}
	if _, err := m.Get("new1"); err != nil {
		t.Errorf("expected fresh session to survive, got %v", err)
	}
}

func TestList(t *testing.T) {
	m := NewManager()
	start, goal := testBoards(t)

	for _, id := range []string{"a1b2", "c3d4", "e5f6"} {
		if _, err := m.Create(id, start, goal); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	sessions := m.List()
	if len(sessions) != 3 {
		t.Errorf("expected 3 sessions, got %d", len(sessions))
	}
}
