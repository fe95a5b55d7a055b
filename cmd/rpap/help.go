package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const howToUse = `# How to use RPAP

RPAP picks rows in random order and presents them one card at a time.

1. **Paste** your rows into the left pane. Copy cells straight from a
   spreadsheet: every line becomes a card and every tab-separated cell
   becomes a line on that card. Blank lines are skipped.
2. Press **ctrl+s** to shuffle the rows and load the deck.
3. Press **enter** to start, then **enter** again for each next card.
4. Press **f** (or **ctrl+o**) to hide the editor and present full screen.

| Key | Action |
|-----|--------|
| ctrl+s | shuffle & run |
| ctrl+v | paste from clipboard |
| ctrl+u | clear the input |
| tab | type a cell separator in the editor |
| esc / shift+tab | leave the editor |
| tab | return to the editor from the presenter |
| enter / space | start, next card |
| y | copy the current card |
| ? | toggle this page |
| q | quit (from the presenter) |
| esc | leave full screen or this page |

Submitting again at any time reshuffles and starts over. Cells cannot
contain tab characters.
`

// renderHelp renders the usage page for the given width and theme.
func renderHelp(width int, theme string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return "", fmt.Errorf("help renderer: %w", err)
	}
	out, err := r.Render(howToUse)
	if err != nil {
		return "", fmt.Errorf("render help: %w", err)
	}
	return out, nil
}
