package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editor is the raw-input field. bubbles/textarea rewrites tabs to spaces,
// which would destroy the cell delimiters, so this keeps the runes as typed
// or pasted. Editing happens at the end of the buffer.
type editor struct {
	value   []rune
	focused bool
	width   int
	height  int
}

func newEditor(initial string) editor {
	return editor{value: []rune(initial), width: minEditorWidth, height: 10}
}

func (e *editor) SetValue(s string) {
	e.value = []rune(s)
}

func (e editor) Value() string {
	return string(e.value)
}

func (e *editor) SetSize(w, h int) {
	e.width = max(w, minEditorWidth)
	e.height = max(h, 1)
}

func (e *editor) Focus() { e.focused = true }
func (e *editor) Blur()  { e.focused = false }

// Update applies one key press and reports whether the text changed.
func (e *editor) Update(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		e.value = append(e.value, msg.Runes...)
	case tea.KeySpace:
		e.value = append(e.value, ' ')
	case tea.KeyTab:
		e.value = append(e.value, '\t')
	case tea.KeyEnter:
		e.value = append(e.value, '\n')
	case tea.KeyBackspace:
		if len(e.value) == 0 {
			return false
		}
		e.value = e.value[:len(e.value)-1]
	case tea.KeyCtrlU:
		if len(e.value) == 0 {
			return false
		}
		e.value = e.value[:0]
	default:
		return false
	}
	return true
}

// View renders the tail of the buffer that fits, with tabs made visible.
func (e editor) View() string {
	lines := strings.Split(string(e.value), "\n")
	if len(lines) > e.height {
		lines = lines[len(lines)-e.height:]
	}

	clip := lipgloss.NewStyle().MaxWidth(e.width)
	glyph := subtleStyle.Render(tabGlyph + tabGlyphPad)
	out := make([]string, len(lines))
	for i, line := range lines {
		rendered := strings.ReplaceAll(line, "\t", glyph)
		if e.focused && i == len(lines)-1 {
			rendered += cursorStyle.Render(cursorGlyph)
		}
		out[i] = clip.Render(rendered)
	}
	for len(out) < e.height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
