package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads and validates a deck file. Decks are JSON documents with a
// name and a list of typed cards; a deck with zero cards is legal (the
// player shows an empty state and arms no timers).
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}

	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return Deck{}, fmt.Errorf("parse deck %s: %w", filepath.Base(path), err)
	}

	if strings.TrimSpace(d.Name) == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	for i, c := range d.Cards {
		if err := c.validate(); err != nil {
			return Deck{}, fmt.Errorf("deck %s: card %d: %w", d.Name, i, err)
		}
	}

	return d, nil
}
