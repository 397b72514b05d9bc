package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is one recorded indicator transition
type Event struct {
	ID        string    `json:"id"`
	SlotID    string    `json:"slot_id"`
	CntrlType string    `json:"cntrl_type"`
	OldState  string    `json:"old_state"`
	NewState  string    `json:"new_state"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordTransition logs an indicator state transition for a slot
func (d *DB) RecordTransition(slotID, cntrlType, oldState, newState string) error {
	_, err := d.conn.Exec(`
		INSERT INTO led_events (id, slot_id, cntrl_type, old_state, new_state, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), slotID, cntrlType, oldState, newState, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("failed to record transition: %w", err)
	}

	return nil
}

// RecentEvents returns the most recent transitions across all slots
func (d *DB) RecentEvents(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := d.conn.Query(`
		SELECT id, slot_id, cntrl_type, old_state, new_state, timestamp
		FROM led_events
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// SlotEvents returns transitions for a specific slot
func (d *DB) SlotEvents(slotID string, limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := d.conn.Query(`
		SELECT id, slot_id, cntrl_type, old_state, new_state, timestamp
		FROM led_events
		WHERE slot_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`, slotID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query slot events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		var event Event
		err := rows.Scan(
			&event.ID, &event.SlotID, &event.CntrlType,
			&event.OldState, &event.NewState, &event.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}
