// Package library manages named puzzle definitions stored as JSON files.
//
// Each file in the library directory describes one puzzle: a name, the
// grid side, the start cells and an optional goal (empty goal = canonical
// solved board). Definitions are validated through the board package on
// load, cached, and can be written back via Save.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tilegame/slidesolver/puzzle/board"
	"github.com/tilegame/slidesolver/puzzle/parse"
	"github.com/tilegame/slidesolver/puzzle/service"
)

var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrInvalidPuzzle  = errors.New("invalid puzzle")
)

// Manager handles puzzle definition loading and caching
type Manager struct {
	puzzleDir     string
	defaultPuzzle *service.Puzzle
	puzzles       map[string]*service.Puzzle
	mu            sync.RWMutex
}

// NewManager creates a new puzzle library manager
func NewManager(puzzleDir string) (*Manager, error) {
	if _, err := os.Stat(puzzleDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("puzzle directory does not exist: %s", puzzleDir)
	}

	m := &Manager{
		puzzleDir: puzzleDir,
		puzzles:   make(map[string]*service.Puzzle),
	}

	if err := m.loadDefaultPuzzle(); err != nil {
		return nil, fmt.Errorf("failed to load default puzzle: %w", err)
	}

	return m, nil
}

// Load loads a puzzle definition by name
func (m *Manager) Load(name string) (*service.Puzzle, error) {
	m.mu.RLock()
	if p, exists := m.puzzles[name]; exists {
		m.mu.RUnlock()
		return p, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock
	if p, exists := m.puzzles[name]; exists {
		return p, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.puzzleDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPuzzleNotFound
		}
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	var p service.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle: %w", err)
	}

	if err := Validate(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}

	m.puzzles[name] = &p
	return &p, nil
}

// List returns information about all available puzzles
func (m *Manager) List() ([]*service.PuzzleInfo, error) {
	entries, err := os.ReadDir(m.puzzleDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle directory: %w", err)
	}

	var puzzles []*service.PuzzleInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		p, err := m.Load(name)
		if err != nil {
			// Skip invalid puzzle files
			continue
		}

		puzzles = append(puzzles, &service.PuzzleInfo{
			Filename:    entry.Name(),
			PuzzleID:    name,
			Name:        p.Name,
			Description: p.Description,
			Side:        p.Side,
		})
	}

	return puzzles, nil
}

// Save validates and stores a puzzle definition to disk
func (m *Manager) Save(name string, p *service.Puzzle) error {
	if err := Validate(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.puzzleDir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write puzzle file: %w", err)
	}

	m.mu.Lock()
	m.puzzles[name] = p
	m.mu.Unlock()

	return nil
}

// GetDefault returns the default puzzle
func (m *Manager) GetDefault() *service.Puzzle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultPuzzle
}

// RefreshCache reloads all cached puzzles from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.puzzles = make(map[string]*service.Puzzle)
	m.mu.Unlock()

	return m.loadDefaultPuzzle()
}

// loadDefaultPuzzle picks classic.json when present, then the first valid
// puzzle on disk, then a built-in minimal definition. Load and List take
// the manager mutex themselves, so this must not hold it.
func (m *Manager) loadDefaultPuzzle() error {
	p, err := m.Load("classic")
	if err != nil {
		p = minimalPuzzle()
		if puzzles, listErr := m.List(); listErr == nil && len(puzzles) > 0 {
			if loaded, loadErr := m.Load(puzzles[0].PuzzleID); loadErr == nil {
				p = loaded
			}
		}
	}

	m.mu.Lock()
	m.defaultPuzzle = p
	m.mu.Unlock()
	return nil
}

// Validate checks a puzzle definition: both boards must construct, the
// side must match, and goal (when present) must have the same shape.
func Validate(p *service.Puzzle) error {
	if p == nil {
		return fmt.Errorf("puzzle cannot be nil")
	}
	if p.Name == "" {
		return fmt.Errorf("puzzle name is required")
	}

	start, err := boardFromInts(p.Start)
	if err != nil {
		return fmt.Errorf("start board: %v", err)
	}
	if p.Side != 0 && p.Side != start.Side() {
		return fmt.Errorf("side is %d but start board is %dx%d", p.Side, start.Side(), start.Side())
	}

	if len(p.Goal) > 0 {
		goal, err := boardFromInts(p.Goal)
		if err != nil {
			return fmt.Errorf("goal board: %v", err)
		}
		if goal.Side() != start.Side() {
			return fmt.Errorf("goal board is %dx%d but start board is %dx%d",
				goal.Side(), goal.Side(), start.Side(), start.Side())
		}
	}

	return nil
}

func boardFromInts(values []int) (board.Board, error) {
	cells, err := parse.Cells(values)
	if err != nil {
		return board.Board{}, err
	}
	return board.New(cells)
}

// minimalPuzzle is the built-in fallback: a two-move 3x3 scramble.
func minimalPuzzle() *service.Puzzle {
	return &service.Puzzle{
		Name:        "default",
		Description: "Built-in two-move scramble",
		Side:        3,
		Start:       []int{1, 2, 3, 4, 0, 5, 7, 8, 6},
	}
}
