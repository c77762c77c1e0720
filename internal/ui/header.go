package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status bar: deck name, position, and
// play state.
func (m Model) renderHeader() string {
	snap := m.eng.Snapshot()

	name := m.deck.Name
	if name == "" {
		name = "flipdeck"
	}

	state := m.styles.Paused.Render("⏸ paused")
	if snap.Playing {
		state = m.styles.Playing.Render("▶ playing")
	}
	if snap.Flipped {
		state = m.styles.Subtitle.Render("↩ flipped")
	}

	left := m.styles.Header.Render(name)
	right := m.styles.HeaderMuted.Render(positionLabel(snap.Index, snap.Count)) + " " + state

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderProgress renders the autoplay progress bar. The bar only moves
// while autoplay is armed; paused and flipped states freeze it.
func (m Model) renderProgress() string {
	snap := m.eng.Snapshot()
	if !snap.HasCurrent {
		return ""
	}
	bar := m.bar.ViewAs(float64(snap.Progress) / 100)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar)
}

// renderFooter renders the bottom line: search prompt, notice, help
// overlay, or the command bar.
func (m Model) renderFooter() string {
	if m.searchMode {
		return m.searchInput.View()
	}
	if m.showHelp {
		m.help.ShowAll = true
		return m.help.View(m.keys)
	}
	if m.notice != "" {
		return m.styles.Subtitle.Render(m.notice)
	}
	m.help.ShowAll = false
	return m.styles.CommandBar.Render(m.help.View(m.keys))
}

// positionLabel formats the 1-based card position, e.g. "3/12".
func positionLabel(index, count int) string {
	if count == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", index+1, count)
}
