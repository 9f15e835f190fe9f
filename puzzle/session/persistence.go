package session

import (
	"time"

	"github.com/tilegame/slidesolver/puzzle/service"
)

// SessionPersistence defines the interface for session storage backends
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage
	Load(sessionID string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(sessionID string) error

	// Exists checks if a session exists in storage
	Exists(sessionID string) bool

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)
}

// PersistedSessionData is the JSON shape a session takes on disk. Boards
// are stored as flat cell slices and rebuilt on load.
type PersistedSessionData struct {
	ID             string               `json:"id"`
	Start          []int                `json:"start"`
	Goal           []int                `json:"goal"`
	Result         *service.SolveResult `json:"result,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
}
