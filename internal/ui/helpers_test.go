package ui

import (
	"testing"

	"github.com/keelow/flipdeck/internal/deck"
)

func TestPositionLabel(t *testing.T) {
	tests := []struct {
		index, count int
		want         string
	}{
		{0, 0, "0/0"},
		{0, 1, "1/1"},
		{2, 12, "3/12"},
	}
	for _, tt := range tests {
		if got := positionLabel(tt.index, tt.count); got != tt.want {
			t.Fatalf("positionLabel(%d, %d) = %q, want %q", tt.index, tt.count, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{12.5, "12.50"},
		{1200.5, "1,200.50"},
		{1234567.89, "1,234,567.89"},
		{-950, "-950.00"},
		{-12345.6, "-12,345.60"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Fatalf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func testDeck() deck.Deck {
	return deck.Deck{
		Name: "test",
		Cards: []deck.Card{
			{Kind: deck.KindText, Front: "hola", Back: "hello"},
			{Kind: deck.KindTranslation, Term: "gato", Translation: "cat"},
			{Kind: deck.KindFinance, Label: "Rent", Amount: 1200},
		},
	}
}

func TestResolveJumpTarget_ByNumber(t *testing.T) {
	d := testDeck()

	idx, ok := resolveJumpTarget(d, "2")
	if !ok || idx != 1 {
		t.Fatalf("resolveJumpTarget(2) = %d, %v; want 1, true", idx, ok)
	}

	if _, ok := resolveJumpTarget(d, "0"); ok {
		t.Fatal("card numbers are 1-based; 0 should not resolve")
	}
	if _, ok := resolveJumpTarget(d, "4"); ok {
		t.Fatal("out-of-range number should not resolve")
	}
}

func TestResolveJumpTarget_ByFrontText(t *testing.T) {
	d := testDeck()

	idx, ok := resolveJumpTarget(d, "GATO")
	if !ok || idx != 1 {
		t.Fatalf("resolveJumpTarget(GATO) = %d, %v; want 1, true", idx, ok)
	}
	idx, ok = resolveJumpTarget(d, "rent")
	if !ok || idx != 2 {
		t.Fatalf("resolveJumpTarget(rent) = %d, %v; want 2, true", idx, ok)
	}
	if _, ok := resolveJumpTarget(d, "perro"); ok {
		t.Fatal("non-matching text should not resolve")
	}
}

func TestResolveJumpTarget_EmptyDeck(t *testing.T) {
	if _, ok := resolveJumpTarget(deck.Deck{}, "1"); ok {
		t.Fatal("empty deck should never resolve")
	}
}

func TestThemeCycleVisitsAllThemes(t *testing.T) {
	seen := map[string]bool{}
	name := ThemeNames()[0]
	for range ThemeNames() {
		seen[name] = true
		name = NextTheme(name)
	}
	if len(seen) != len(ThemeNames()) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(ThemeNames()))
	}
	if name != ThemeNames()[0] {
		t.Fatalf("cycle did not wrap: ended on %q", name)
	}
}

func TestGetThemeUnknownFallsBack(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Indigo" {
		t.Fatalf("GetTheme(nope) = %q, want Indigo", got)
	}
}

func TestBarWidthClamps(t *testing.T) {
	if got := barWidth(8); got != 10 {
		t.Fatalf("barWidth(8) = %d, want 10", got)
	}
	if got := barWidth(200); got != 80 {
		t.Fatalf("barWidth(200) = %d, want 80", got)
	}
	if got := barWidth(60); got != 56 {
		t.Fatalf("barWidth(60) = %d, want 56", got)
	}
}
