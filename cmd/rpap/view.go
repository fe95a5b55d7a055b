package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sidepunch/rpap/internal/deck"
	"github.com/sidepunch/rpap/internal/picker"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C79FD7")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#737373"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A5D6A7"))
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#404040"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9")).Bold(true)

	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9"))
	fieldStyle   = lipgloss.NewStyle().Bold(true)
	buttonStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BD93F9")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(0, 2)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C79FD7")).
			Padding(1, 2)
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#404040"))
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("#BD93F9"))
)

// View renders the TUI.
func (m model) View() string {
	if m.showHelp {
		return m.helpView.View()
	}

	bodyHeight := max(m.height-reservedRows, 3)
	editorW, presenterW := paneWidths(m.width, m.fullscreen)

	presenter := lipgloss.Place(presenterW-2, bodyHeight-2, lipgloss.Center, lipgloss.Center,
		renderPresenter(m.machine.State(), m.anim, m.progress.ViewAs, presenterW-4))

	var body string
	if m.fullscreen {
		body = presenter
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.styleFor(focusEditor).Width(editorW-2).Render(m.renderEditorPane(bodyHeight-2)),
			" ",
			m.styleFor(focusPresenter).Width(presenterW-2).Render(presenter),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.machine.State(), m.fullscreen),
		body,
		renderFlash(m.flash),
		m.help.View(m.keys),
	)
}

func (m model) styleFor(area focusArea) lipgloss.Style {
	if m.focus == area {
		return focusedPaneStyle
	}
	return paneStyle
}

func (m model) renderEditorPane(height int) string {
	label := subtleStyle.Render("Copy from a spreadsheet and paste it here")
	rows := 0
	if d, ok := deck.Parse(m.editor.Value()); ok {
		rows = d.Len()
	}
	footer := subtleStyle.Render(fmt.Sprintf("%d rows", rows))
	content := lipgloss.JoinVertical(lipgloss.Left, label, m.editor.View(), footer)
	return lipgloss.NewStyle().MaxHeight(max(height, 1)).Render(content)
}

func renderHeader(s picker.State, fullscreen bool) string {
	title := titleStyle.Render(appTitle)
	badge := statusStyle(s.Status).Render("● " + s.Status.String())
	if fullscreen {
		return title + "  " + badge + "  " + subtleStyle.Render("full screen")
	}
	return title + "  " + badge
}

func statusStyle(st picker.Status) lipgloss.Style {
	switch st {
	case picker.Idle:
		return subtleStyle
	case picker.Ready:
		return warnStyle
	case picker.Running:
		return primaryStyle
	case picker.Finished:
		return okStyle
	}
	return subtleStyle
}

func renderFlash(msg string) string {
	if msg == "" {
		return ""
	}
	return warnStyle.Render(msg)
}

// renderPresenter draws the right pane for the current status. bar renders
// a progress bar for a 0..1 fraction.
func renderPresenter(s picker.State, anim animation, bar func(float64) string, width int) string {
	switch s.Status {
	case picker.Idle:
		return subtleStyle.Render("Press ctrl+s to shuffle and start RPAP!")

	case picker.Ready:
		return lipgloss.JoinVertical(lipgloss.Center,
			buttonStyle.Render("Let's Start"),
			subtleStyle.Render(fmt.Sprintf("%d cards shuffled · press enter", s.Deck.Len())),
		)

	case picker.Running:
		pos, total := s.Progress()
		// An empty resubmit mid-run leaves the index past the placeholder.
		pos = min(pos, max(total, 1))
		card := renderCard(s.Current(), cardWidth(width, anim.scale()))
		return lipgloss.JoinVertical(lipgloss.Center,
			card,
			"",
			subtleStyle.Render("enter ▸ Next"),
			"",
			bar(float64(pos)/float64(max(total, 1))),
			primaryStyle.Render(fmt.Sprintf("%d / %d", pos, total)),
		)

	case picker.Finished:
		return okStyle.Bold(true).Render(iconFinished + " Finished")
	}
	return ""
}

// cardWidth scales the card for the entrance animation.
func cardWidth(available int, scale float64) int {
	full := min(max(available, cardMinWidth), cardMaxWidth)
	w := int(float64(full) * scale)
	return max(w, cardMinWidth/2)
}

// renderCard stacks the row's fields vertically inside a bordered card.
func renderCard(row deck.Row, width int) string {
	header := titleStyle.Render(iconCard) + " " + lineStyle.Render(strings.Repeat("╌", max(width-8, 4)))

	lines := make([]string, 0, len(row)+1)
	lines = append(lines, header)
	if len(row) == 0 {
		lines = append(lines, subtleStyle.Render("(empty)"))
	}
	for _, field := range row.Lines() {
		lines = append(lines, fieldStyle.Render(shorten(field, max(width-6, 1))))
	}
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// shorten truncates s to maxLen runes, ending with an ellipsis.
func shorten(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(r[:maxLen-1]) + "…"
}
