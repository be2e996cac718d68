package state

import (
	"database/sql"
	"errors"
)

// Levels holds the last volume and brightness written by the HUD sliders.
type Levels struct {
	Volume     float64
	Brightness float64
}

// GetLevels returns the saved levels, full scale when none were saved.
// Queued levels are visible before they reach the database.
func (m *Manager) GetLevels() (*Levels, error) {
	if l, ok := m.queued(); ok {
		return &l, nil
	}

	var l Levels

	row := m.db.QueryRow(`SELECT volume, brightness FROM levels WHERE id = 1`)
	err := row.Scan(&l.Volume, &l.Brightness)
	if errors.Is(err, sql.ErrNoRows) {
		return &Levels{Volume: 1.0, Brightness: 1.0}, nil
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// SaveLevels persists the slider levels immediately, superseding any
// queued write.
func (m *Manager) SaveLevels(l Levels) error {
	m.dropQueued()
	return saveLevels(m.db, l)
}

func saveLevels(db *sql.DB, l Levels) error {
	_, err := db.Exec(`
		INSERT INTO levels (id, volume, brightness)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			brightness = excluded.brightness
	`, l.Volume, l.Brightness)
	return err
}
