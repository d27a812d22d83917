package decision

import (
	"testing"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"
)

func TestFilterFamilyExcludesSpicyAndUnfriendly(t *testing.T) {
	catalog := []menu.Item{
		{ID: "mild", Name: "된장찌개", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
		{ID: "hot", Name: "마파두부", Category: "중식", FamilyFriendly: true, SpicyLevel: 3},
		{ID: "adult", Name: "간장게장", Category: "한식", FamilyFriendly: false, SpicyLevel: 0},
		{ID: "borderline", Name: "치킨", Category: "치킨", FamilyFriendly: true, SpicyLevel: 1},
	}

	items, tier := Filter(catalog, GroupFamily, ModeDelivery)
	if tier != TierPrimary {
		t.Fatalf("expected primary tier, got %s", tier)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 family-safe items, got %d", len(items))
	}
	for _, item := range items {
		if item.SpicyLevel > 1 || !item.FamilyFriendly {
			t.Fatalf("family filter let through %q", item.Name)
		}
	}
}

func TestFilterCookUsesAllowList(t *testing.T) {
	catalog := []menu.Item{
		{ID: "listed", Name: "간장계란밥", Category: menu.CategoryCook, FamilyFriendly: true},
		{ID: "unlisted", Name: "수제 라자냐", Category: menu.CategoryCook, FamilyFriendly: true},
		{ID: "other", Name: "초밥", Category: "일식", FamilyFriendly: true},
	}

	items, tier := Filter(catalog, GroupSolo, ModeCook)
	if tier != TierPrimary {
		t.Fatalf("expected primary tier, got %s", tier)
	}
	if len(items) != 1 || items[0].Name != "간장계란밥" {
		t.Fatalf("expected only the allow-listed recipe, got %+v", items)
	}
}

func TestFilterCookFallsBackToCookCategory(t *testing.T) {
	// None of the cook items is on the allow-list, so tier 1 must return
	// exactly the cook-category items rather than the full catalog.
	catalog := []menu.Item{
		{ID: "a", Name: "수제 라자냐", Category: menu.CategoryCook, FamilyFriendly: true},
		{ID: "b", Name: "홈메이드 그라탕", Category: menu.CategoryCook, FamilyFriendly: true},
		{ID: "c", Name: "초밥", Category: "일식", FamilyFriendly: true},
	}

	items, tier := Filter(catalog, GroupSolo, ModeCook)
	if tier != TierCategory {
		t.Fatalf("expected category tier, got %s", tier)
	}
	if len(items) != 2 {
		t.Fatalf("expected the 2 cook-category items, got %d", len(items))
	}
	for _, item := range items {
		if item.Category != menu.CategoryCook {
			t.Fatalf("non-cook item %q in category fallback", item.Name)
		}
	}
}

func TestFilterCookFallsBackToCatalog(t *testing.T) {
	catalog := []menu.Item{
		{ID: "a", Name: "초밥", Category: "일식", FamilyFriendly: true},
		{ID: "b", Name: "파스타", Category: "양식", FamilyFriendly: true},
	}

	items, tier := Filter(catalog, GroupSolo, ModeCook)
	if tier != TierCatalog {
		t.Fatalf("expected catalog tier, got %s", tier)
	}
	if len(items) != len(catalog) {
		t.Fatalf("expected full catalog, got %d items", len(items))
	}
}

func TestFilterCookNeverEmptyOnRealCatalog(t *testing.T) {
	for _, who := range []GroupContext{GroupSolo, GroupCouple, GroupFamily, GroupFriends} {
		items, _ := Filter(menu.Catalog(), who, ModeCook)
		if len(items) == 0 {
			t.Fatalf("cook filter returned no candidates for %s", who)
		}
	}
}

func TestFilterEmptyResultDegradesToCatalog(t *testing.T) {
	catalog := []menu.Item{
		{ID: "hot", Name: "마파두부", Category: "중식", FamilyFriendly: false, SpicyLevel: 3},
	}
	items, tier := Filter(catalog, GroupFamily, ModeDelivery)
	if tier != TierCatalog {
		t.Fatalf("expected catalog tier, got %s", tier)
	}
	if len(items) != 1 {
		t.Fatalf("expected full catalog fallback, got %d", len(items))
	}
}
