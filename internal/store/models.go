package store

import "time"

// HistoryEntry is one persisted decision for a session. Only the 20 most
// recent entries per session are retained.
type HistoryEntry struct {
	ID        string    `gorm:"primaryKey;size:36"`
	SessionID string    `gorm:"size:64;index"`
	Menu      string    `gorm:"size:128"`
	Mode      string    `gorm:"size:16"`
	Reason    string    `gorm:"size:255"`
	Who       string    `gorm:"size:16"`
	How       string    `gorm:"size:16"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// PreferenceProfile stores the survey answers for a session, one row per
// session replaced on every save.
type PreferenceProfile struct {
	SessionID string `gorm:"primaryKey;size:64"`
	Spicy     int
	Soup      int
	Meat      int
	Seafood   int
	Veg       int
	Time      int
	Budget    int
	Rice      bool
	Noodle    bool
	UpdatedAt time.Time
}

// MenuStat counts how often each menu has been selected across all sessions.
type MenuStat struct {
	Menu      string `gorm:"primaryKey;size:128"`
	Count     int    `gorm:"index"`
	UpdatedAt time.Time
}
