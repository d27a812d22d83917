package menu

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"whitespace stripped", "고추장 참치 비빔밥", "고추장참치비빔밥"},
		{"punctuation stripped", "스팸+계란 (덮밥)", "스팸계란덮밥"},
		{"latin lowercased", " Aglio-Olio ", "aglioolio"},
		{"already normalized", "김치찌개", "김치찌개"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeKey(tc.input); got != tc.expected {
				t.Fatalf("expected %q got %q", tc.expected, got)
			}
		})
	}
}

func TestDefaultMetaHeuristics(t *testing.T) {
	item := Item{Name: "갈비탕", Category: "한식", FamilyFriendly: true}
	m := DefaultMeta(item)
	if m.Soup != 2 {
		t.Fatalf("탕 dish should default to soup 2, got %d", m.Soup)
	}
	if !m.Rice {
		t.Fatal("한식 should default to rice")
	}
	if m.Meat == 0 {
		t.Fatal("갈비 should register as a meat dish")
	}

	noodle := Item{Name: "쌀국수", Category: "아시안", FamilyFriendly: true}
	if !DefaultMeta(noodle).Noodle {
		t.Fatal("국수 dish should default to noodle")
	}

	cold := Item{Name: "냉면", Category: "한식", FamilyFriendly: true}
	if !cold.IsCold() {
		t.Fatal("냉면 should be tagged cold")
	}
}

func TestEffectiveMetaPrefersAnnotation(t *testing.T) {
	item := ByName("짜장면")
	if item == nil {
		t.Fatal("짜장면 missing from catalog")
	}
	m := item.EffectiveMeta()
	if !m.Noodle || m.Soup != 0 {
		t.Fatalf("annotated meta not used: %+v", m)
	}
	// Calling twice must not change the answer.
	if again := item.EffectiveMeta(); again.Meat != m.Meat {
		t.Fatal("effective meta not stable")
	}
}

func TestIsQuickRecipe(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"listed", "간장계란밥", true},
		{"listed with spacing variant", "참치김치찌개", true},
		{"cook item not listed", "스테이크", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsQuickRecipe(tc.input); got != tc.expected {
				t.Fatalf("IsQuickRecipe(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCatalogInvariants(t *testing.T) {
	seen := make(map[string]struct{})
	for _, item := range Catalog() {
		if item.Name == "" || item.Category == "" {
			t.Fatalf("catalog item %q missing name or category", item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			t.Fatalf("duplicate catalog id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
}
