package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "peek"
	dbFileName   = "peek.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db *sql.DB

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Levels
	saveErr   error
}

// Open opens the database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the database at path. ":memory:" is accepted.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Manager{db: db}, nil
}

// Close writes queued levels and closes the database. It reports the
// first failed background write, if any.
func (m *Manager) Close() error {
	return errors.Join(m.Flush(), m.db.Close())
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// QueueLevels stores l after a short quiet period. Writes inside the
// window collapse into the last one.
func (m *Manager) QueueLevels(l Levels) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &l

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		if err := m.Flush(); err != nil {
			m.saveMu.Lock()
			m.saveErr = err
			m.saveMu.Unlock()
		}
	})
}

// Flush writes queued levels now. It also returns, and clears, the error
// of an earlier background write.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = nil
	prev := m.saveErr
	m.saveErr = nil
	m.saveMu.Unlock()

	if pending == nil {
		return prev
	}
	if err := saveLevels(m.db, *pending); err != nil {
		return errors.Join(prev, fmt.Errorf("save levels: %w", err))
	}
	return prev
}

func (m *Manager) queued() (Levels, bool) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.pending == nil {
		return Levels{}, false
	}
	return *m.pending, true
}

func (m *Manager) dropQueued() {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.pending = nil
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
