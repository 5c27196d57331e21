package locale

import "testing"

func TestSetLanguage(t *testing.T) {
	if err := SetLanguage("en"); err != nil {
		t.Fatalf("SetLanguage(en): %v", err)
	}
	if got := Get("MENU_START"); got != "Start" {
		t.Fatalf("MENU_START = %q, want Start", got)
	}
	if got := Get("LEVEL_N", 3); got != "Level 3" {
		t.Fatalf("LEVEL_N = %q, want Level 3", got)
	}

	if err := SetLanguage("ru"); err != nil {
		t.Fatalf("SetLanguage(ru): %v", err)
	}
	if got := Get("MENU_EXIT"); got != "Выход" {
		t.Fatalf("MENU_EXIT = %q", got)
	}
	if Language() != "ru" {
		t.Fatalf("Language = %q, want ru", Language())
	}
}

func TestSetLanguage_UnknownKeepsCatalog(t *testing.T) {
	if err := SetLanguage("en"); err != nil {
		t.Fatalf("SetLanguage(en): %v", err)
	}
	if err := SetLanguage("xx"); err == nil {
		t.Fatal("expected error for missing catalog")
	}
	if Language() != "en" || Get("BACK") != "Back" {
		t.Fatal("failed switch replaced the active catalog")
	}
}

func TestGet_MissingKeyReturnsKey(t *testing.T) {
	if err := SetLanguage("en"); err != nil {
		t.Fatalf("SetLanguage(en): %v", err)
	}
	if got := Get("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Fatalf("Get(NOT_A_KEY) = %q", got)
	}
}
