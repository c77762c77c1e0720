package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write deck file: %v", err)
	}
	return path
}

func TestLoadAllKinds(t *testing.T) {
	path := writeDeck(t, `{
		"name": "mixed",
		"cards": [
			{"type": "text", "front": "hola", "back": "hello"},
			{"type": "image", "image": "assets/map.png", "caption": "Iberia"},
			{"type": "translation", "term": "gato", "translation": "cat", "example": "el gato duerme"},
			{"type": "finance", "label": "Rent", "amount": 1200.50, "occurrence": "monthly"}
		]
	}`)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Name != "mixed" {
		t.Fatalf("Name = %q, want mixed", d.Name)
	}
	if d.Len() != 4 {
		t.Fatalf("Len = %d, want 4", d.Len())
	}

	wantKinds := []Kind{KindText, KindImage, KindTranslation, KindFinance}
	wantTitles := []string{"hola", "assets/map.png", "gato", "Rent"}
	for i := range wantKinds {
		c := d.Card(i)
		if c.Kind != wantKinds[i] {
			t.Fatalf("card %d kind = %q, want %q", i, c.Kind, wantKinds[i])
		}
		if c.Title() != wantTitles[i] {
			t.Fatalf("card %d title = %q, want %q", i, c.Title(), wantTitles[i])
		}
	}
	if got := d.Card(3).Amount; got != 1200.50 {
		t.Fatalf("finance amount = %v, want 1200.50", got)
	}
}

func TestLoadNameDefaultsToFilename(t *testing.T) {
	path := writeDeck(t, `{"cards": [{"type": "text", "front": "a", "back": "b"}]}`)
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Name != "cards" {
		t.Fatalf("Name = %q, want cards", d.Name)
	}
}

func TestLoadEmptyDeckIsLegal(t *testing.T) {
	path := writeDeck(t, `{"name": "empty", "cards": []}`)
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != 0 {
		t.Fatalf("Len = %d, want 0", d.Len())
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := writeDeck(t, `{"cards": [{"type": "video", "front": "x"}]}`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted an unknown card type")
	}
}

func TestLoadRejectsIncompleteCards(t *testing.T) {
	tests := []struct {
		name string
		card string
	}{
		{"text without front", `{"type": "text", "back": "b"}`},
		{"image without path", `{"type": "image", "caption": "c"}`},
		{"translation without translation", `{"type": "translation", "term": "t"}`},
		{"finance without label", `{"type": "finance", "amount": 3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDeck(t, `{"cards": [`+tt.card+`]}`)
			if _, err := Load(path); err == nil {
				t.Fatal("Load accepted an incomplete card")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Load of a missing file should fail")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeDeck(t, `{"cards": [`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed JSON")
	}
}
