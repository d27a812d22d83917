package store

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), true)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHistoryAppendAndList(t *testing.T) {
	db := openTestDB(t)

	for _, menu := range []string{"김치찌개", "초밥", "파스타"} {
		err := db.AppendHistory(&HistoryEntry{
			SessionID: "s1",
			Menu:      menu,
			Mode:      "random",
			Reason:    "혼밥의 정석",
			Who:       "solo",
			How:       "delivery",
		})
		if err != nil {
			t.Fatalf("append %s: %v", menu, err)
		}
	}

	rows, err := db.ListHistory("s1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(rows))
	}
	for _, row := range rows {
		if row.ID == "" {
			t.Fatal("entry id not assigned")
		}
	}

	if rows, _ := db.ListHistory("other", 0); len(rows) != 0 {
		t.Fatalf("unexpected entries for other session: %d", len(rows))
	}
}

func TestHistoryCapPerSession(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < historyCap+5; i++ {
		err := db.AppendHistory(&HistoryEntry{SessionID: "s1", Menu: "라면", Mode: "random"})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	// A second session must not be affected by the first one's trimming.
	if err := db.AppendHistory(&HistoryEntry{SessionID: "s2", Menu: "국밥", Mode: "random"}); err != nil {
		t.Fatalf("append s2: %v", err)
	}

	rows, err := db.ListHistory("s1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != historyCap {
		t.Fatalf("expected history capped at %d, got %d", historyCap, len(rows))
	}
	if rows, _ := db.ListHistory("s2", 0); len(rows) != 1 {
		t.Fatalf("expected 1 entry for s2, got %d", len(rows))
	}
}

func TestHistoryDelete(t *testing.T) {
	db := openTestDB(t)

	entry := &HistoryEntry{SessionID: "s1", Menu: "냉면"}
	if err := db.AppendHistory(entry); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := db.AppendHistory(&HistoryEntry{SessionID: "s1", Menu: "치킨"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := db.DeleteHistoryEntry(entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rows, _ := db.ListHistory("s1", 0)
	if len(rows) != 1 || rows[0].Menu != "치킨" {
		t.Fatalf("expected only 치킨 left, got %+v", rows)
	}

	if err := db.ClearHistory("s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if rows, _ := db.ListHistory("s1", 0); len(rows) != 0 {
		t.Fatalf("expected empty history after clear, got %d", len(rows))
	}
}

func TestRecentMenus(t *testing.T) {
	db := openTestDB(t)
	for _, menu := range []string{"a", "b", "c"} {
		if err := db.AppendHistory(&HistoryEntry{SessionID: "s1", Menu: menu}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	menus, err := db.RecentMenus("s1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(menus) != 2 {
		t.Fatalf("expected 2 recent menus, got %v", menus)
	}
}

func TestPreferencesUpsert(t *testing.T) {
	db := openTestDB(t)

	if profile, err := db.GetPreferences("s1"); err != nil || profile != nil {
		t.Fatalf("expected nil profile for new session, got %+v err %v", profile, err)
	}

	first := &PreferenceProfile{SessionID: "s1", Spicy: 2, Soup: 1, Rice: true}
	if err := db.SavePreferences(first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := &PreferenceProfile{SessionID: "s1", Spicy: 0, Soup: 2, Noodle: true}
	if err := db.SavePreferences(second); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := db.GetPreferences("s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Spicy != 0 || got.Soup != 2 || !got.Noodle || got.Rice {
		t.Fatalf("upsert did not replace profile: %+v", got)
	}
}

func TestMenuStatsIncrementAndTop(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 3; i++ {
		if err := db.IncrementMenuStat("김치찌개"); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	if err := db.IncrementMenuStat("초밥"); err != nil {
		t.Fatalf("increment: %v", err)
	}

	top, err := db.TopMenus(10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 stats rows, got %d", len(top))
	}
	if top[0].Menu != "김치찌개" || top[0].Count != 3 {
		t.Fatalf("unexpected leader: %+v", top[0])
	}
	if top[1].Count != 1 {
		t.Fatalf("unexpected runner-up: %+v", top[1])
	}
}
