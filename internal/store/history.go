package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// historyCap bounds retained decisions per session.
const historyCap = 20

// AppendHistory persists a decision and trims the session to the most
// recent entries.
func (d *Database) AppendHistory(entry *HistoryEntry) error {
	if entry == nil {
		return errors.New("history entry is nil")
	}
	entry.SessionID = strings.TrimSpace(entry.SessionID)
	if entry.SessionID == "" {
		return errors.New("session id is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.gorm.Create(entry).Error; err != nil {
		return err
	}
	return d.gorm.Exec(`
		DELETE FROM history_entries
		WHERE session_id = ?
		  AND id NOT IN (
			SELECT id FROM history_entries
			WHERE session_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		  )`, entry.SessionID, entry.SessionID, historyCap).Error
}

// ListHistory returns a session's decisions, newest first.
func (d *Database) ListHistory(sessionID string, limit int) ([]HistoryEntry, error) {
	query := d.gorm.Model(&HistoryEntry{}).
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []HistoryEntry
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// RecentMenus returns the most recently selected menu names for a session,
// newest first, for recency exclusion during selection.
func (d *Database) RecentMenus(sessionID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = historyCap
	}
	var menus []string
	err := d.gorm.Model(&HistoryEntry{}).
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Pluck("menu", &menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// DeleteHistoryEntry removes a single decision by id.
func (d *Database) DeleteHistoryEntry(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Delete(&HistoryEntry{}, "id = ?", id).Error
}

// ClearHistory removes all decisions for a session.
func (d *Database) ClearHistory(sessionID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Delete(&HistoryEntry{}, "session_id = ?", sessionID).Error
}
