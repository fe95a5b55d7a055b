package main

const (
	appTitle = "RPAP - Random Pick and Presenter"

	defaultWidth       = 100
	defaultHeight      = 30
	minEditorWidth     = 24
	editorWidthPercent = 45
	cardMinWidth       = 20
	cardMaxWidth       = 72
	progressMaxWidth   = 40
	reservedRows       = 5 // Header + footer.

	watchDebounce = 150 // Milliseconds.
)

// Symbols used to show invisible delimiters in the editor.
const (
	tabGlyph     = "→"
	tabGlyphPad  = "   "
	cursorGlyph  = "▏"
	iconCard     = "◆"
	iconFinished = "✔"
)

// Status line messages.
const (
	msgEmptySubmit = "Nothing to shuffle: paste some rows first"
	msgCleared     = "Input cleared"
	msgCopied      = "Card copied to clipboard"
	msgReloaded    = "Input reloaded from %s"
)
