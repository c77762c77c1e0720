package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keelow/flipdeck/internal/deck"
)

// renderCard renders the active card face centered in the content area.
func (m Model) renderCard() string {
	// Header, progress, and footer each take one line.
	h := m.height - 3
	if h < 3 {
		h = 3
	}

	snap := m.eng.Snapshot()
	if !snap.HasCurrent {
		empty := m.styles.Subtitle.Render("No cards in this deck.")
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, empty)
	}

	card := m.deck.Card(snap.Index)
	content := m.renderFace(card, snap.Flipped)

	box := m.styles.CardFront
	if snap.Flipped {
		box = m.styles.CardBack
	}
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, box.Render(content))
}

// renderFace renders the front or back content of one card according
// to its payload kind. This is the only place kinds are dispatched;
// everything upstream deals in indexes.
func (m Model) renderFace(c deck.Card, flipped bool) string {
	switch c.Kind {
	case deck.KindImage:
		if flipped {
			return m.styles.Title.Render(c.Caption)
		}
		return m.styles.Title.Render("🖼 "+c.Image) + "\n" + m.styles.Subtitle.Render(c.Caption)

	case deck.KindTranslation:
		if flipped {
			out := m.styles.Title.Render(c.Translation)
			if c.Example != "" {
				out += "\n" + m.styles.Faint.Render(c.Example)
			}
			return out
		}
		return m.styles.Title.Render(c.Term)

	case deck.KindFinance:
		if flipped {
			return m.styles.Title.Render(formatAmount(c.Amount)) + "\n" +
				m.styles.Subtitle.Render(c.Occurrence)
		}
		return m.styles.Title.Render(c.Label)

	default: // text
		if flipped {
			return m.styles.Title.Render(c.Back)
		}
		return m.styles.Title.Render(c.Front)
	}
}

// formatAmount renders a finance amount with a sign and two decimals.
func formatAmount(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-%s", formatAmount(-v))
	}
	s := fmt.Sprintf("%.2f", v)
	// Insert thousands separators into the integer part.
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + frac
}
