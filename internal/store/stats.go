package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavePreferences inserts or replaces the profile for its session.
func (d *Database) SavePreferences(profile *PreferenceProfile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	profile.SessionID = strings.TrimSpace(profile.SessionID)
	if profile.SessionID == "" {
		return errors.New("session id is required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"spicy", "soup", "meat", "seafood", "veg",
			"time", "budget", "rice", "noodle", "updated_at",
		}),
	}).Create(profile).Error
}

// GetPreferences returns the stored profile, or nil when the session has
// never saved one.
func (d *Database) GetPreferences(sessionID string) (*PreferenceProfile, error) {
	var profile PreferenceProfile
	err := d.gorm.First(&profile, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// IncrementMenuStat bumps the selection counter for a menu.
func (d *Database) IncrementMenuStat(menuName string) error {
	menuName = strings.TrimSpace(menuName)
	if menuName == "" {
		return errors.New("menu name is required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "menu"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count":      gorm.Expr("menu_stats.count + 1"),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&MenuStat{Menu: menuName, Count: 1}).Error
}

// TopMenus returns the most selected menus in descending order.
func (d *Database) TopMenus(limit int) ([]MenuStat, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []MenuStat
	err := d.gorm.Model(&MenuStat{}).
		Order("count DESC, menu ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
