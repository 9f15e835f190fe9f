package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tilegame/slidesolver/puzzle/board"
	"github.com/tilegame/slidesolver/puzzle/parse"
	"github.com/tilegame/slidesolver/puzzle/service"
)

// FilePersistence implements SessionPersistence using JSON files
type FilePersistence struct {
	storageDir string
}

// NewFilePersistence creates a new file-based session persistence layer
func NewFilePersistence(storageDir string) (*FilePersistence, error) {
	if err := os.MkdirAll(storageDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session storage directory: %w", err)
	}

	return &FilePersistence{storageDir: storageDir}, nil
}

// Save persists a session to a JSON file
func (fp *FilePersistence) Save(session *service.Session) error {
	data := PersistedSessionData{
		ID:             session.ID,
		Start:          service.CellInts(session.Start),
		Goal:           service.CellInts(session.Goal),
		Result:         session.Result,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	filename := fp.sessionFilePath(session.ID)
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Load retrieves a session from its JSON file, rebuilding the boards
// from the persisted cell slices.
func (fp *FilePersistence) Load(sessionID string) (*service.Session, error) {
	filename := fp.sessionFilePath(sessionID)

	jsonData, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var data PersistedSessionData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	start, err := boardFromInts(data.Start)
	if err != nil {
		return nil, fmt.Errorf("persisted session %s has invalid start board: %w", sessionID, err)
	}
	goal, err := boardFromInts(data.Goal)
	if err != nil {
		return nil, fmt.Errorf("persisted session %s has invalid goal board: %w", sessionID, err)
	}

	return &service.Session{
		ID:             data.ID,
		Start:          start,
		Goal:           goal,
		Result:         data.Result,
		CreatedAt:      data.CreatedAt,
		LastAccessedAt: data.LastAccessedAt,
	}, nil
}

// Delete removes a session file
func (fp *FilePersistence) Delete(sessionID string) error {
	filename := fp.sessionFilePath(sessionID)

	if err := os.Remove(filename); err != nil {
		if os.IsNotExist(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session file: %w", err)
	}

	return nil
}

// Exists checks if a session file exists
func (fp *FilePersistence) Exists(sessionID string) bool {
	_, err := os.Stat(fp.sessionFilePath(sessionID))
	return err == nil
}

// ListAll returns the IDs of every persisted session
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.storageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read session storage directory: %w", err)
	}

	var sessionIDs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		sessionIDs = append(sessionIDs, strings.TrimSuffix(entry.Name(), ".json"))
	}

	return sessionIDs, nil
}

// sessionFilePath returns the file path for a session ID
func (fp *FilePersistence) sessionFilePath(sessionID string) string {
	return filepath.Join(fp.storageDir, strings.ToLower(sessionID)+".json")
}

func boardFromInts(values []int) (board.Board, error) {
	cells, err := parse.Cells(values)
	if err != nil {
		return board.Board{}, err
	}
	return board.New(cells)
}
