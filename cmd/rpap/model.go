package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sidepunch/rpap/internal/deck"
	"github.com/sidepunch/rpap/internal/picker"
)

// Package-level so tests can stub the system clipboard.
var (
	clipboardReadAll  = clipboard.ReadAll
	clipboardWriteAll = clipboard.WriteAll
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusPresenter
)

// cardAnimMsg advances the entrance animation of card generation gen.
type cardAnimMsg struct {
	gen int
}

type clipboardMsg struct {
	text string
	err  error
}

// animation is cosmetic state for the card currently growing in. It is not
// part of picker.State.
type animation struct {
	gen      int
	frame    int
	frames   int
	interval time.Duration
}

func (a animation) done() bool {
	return a.frames == 0 || a.frame >= a.frames
}

// scale is the fraction of the final card width to draw.
func (a animation) scale() float64 {
	if a.done() {
		return 1
	}
	return float64(a.frame+1) / float64(a.frames+1)
}

func (a animation) tick() tea.Cmd {
	gen := a.gen
	return tea.Tick(a.interval, func(time.Time) tea.Msg { return cardAnimMsg{gen: gen} })
}

type modelOptions struct {
	Input      string
	Shuffler   *deck.Shuffler
	Logger     *zap.Logger
	Theme      string
	Fullscreen bool
	AnimFrames int
	AnimEvery  time.Duration
}

type model struct {
	keys     keyMap
	help     help.Model
	editor   editor
	machine  *picker.Machine
	shuffler *deck.Shuffler
	logger   *zap.Logger
	progress progress.Model
	helpView viewport.Model

	anim       animation
	focus      focusArea
	fullscreen bool
	showHelp   bool
	theme      string
	flash      string
	width      int
	height     int
}

func newModel(opts modelOptions) model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	shuffler := opts.Shuffler
	if shuffler == nil {
		shuffler = deck.NewShuffler(0, deck.ModeLegacy)
	}
	theme := opts.Theme
	if theme == "" {
		theme = "dark"
	}

	m := model{
		keys:       defaultKeyMap(),
		help:       help.New(),
		editor:     newEditor(opts.Input),
		machine:    picker.NewMachine(),
		shuffler:   shuffler,
		logger:     logger,
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		helpView:   viewport.New(defaultWidth, defaultHeight),
		anim:       animation{frames: max(opts.AnimFrames, 0), interval: opts.AnimEvery},
		fullscreen: opts.Fullscreen,
		theme:      theme,
	}
	if m.anim.interval <= 0 {
		m.anim.interval = 40 * time.Millisecond
	}
	m.machine.Subscribe(logTransition(logger))
	if m.fullscreen {
		m.focus = focusPresenter
	} else {
		m.editor.Focus()
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func logTransition(logger *zap.Logger) picker.Observer {
	return func(prev, next picker.State, ev picker.Event) {
		fields := []zap.Field{
			zap.Stringer("event", ev),
			zap.Stringer("from", prev.Status),
			zap.Stringer("to", next.Status),
			zap.Int("index", next.Index),
			zap.Int("deck_size", next.Deck.Len()),
		}
		switch ev {
		case picker.EventIgnored:
			logger.Debug("transition ignored", fields...)
		case picker.EventSubmitted, picker.EventSubmitEmpty:
			logger.Info("deck submitted", append(fields, zap.String("deck", deck.Fingerprint(next.Deck)))...)
		default:
			logger.Info("transition", fields...)
		}
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case cardAnimMsg:
		if msg.gen != m.anim.gen || m.anim.done() {
			return m, nil
		}
		m.anim.frame++
		if m.anim.done() {
			return m, nil
		}
		return m, m.anim.tick()

	case clipboardMsg:
		if msg.err != nil {
			m.flash = "Clipboard: " + msg.err.Error()
			m.logger.Warn("clipboard read", zap.Error(msg.err))
			return m, nil
		}
		m.editor.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(msg.text), Paste: true})
		return m, nil

	case inputReloadedMsg:
		m.editor.SetValue(msg.text)
		m.flash = fmt.Sprintf(msgReloaded, msg.path)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) || msg.Type == tea.KeyEsc {
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	// Printable keys belong to the editor while it has focus.
	if m.focus == focusEditor && isTextKey(msg) {
		m.editor.Update(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Shuffle):
		return m.submit()
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil
	case key.Matches(msg, m.keys.Fullscreen):
		return m.toggleFullscreen()
	case key.Matches(msg, m.keys.Paste):
		return m, readClipboard
	}

	if m.focus == focusEditor {
		if msg.Type == tea.KeyEsc {
			m.toggleFocus()
			return m, nil
		}
		if m.editor.Update(msg) && msg.Type == tea.KeyCtrlU {
			m.flash = msgCleared
		}
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyEsc:
		if m.fullscreen {
			return m.toggleFullscreen()
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.next()
	case key.Matches(msg, m.keys.Copy):
		return m.copyCard()
	case key.Matches(msg, m.keys.Help):
		return m.openHelp()
	case key.Matches(msg, m.keys.Quit):
		if m.fullscreen {
			return m.toggleFullscreen()
		}
		return m, tea.Quit
	}
	return m, nil
}

func isTextKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyTab, tea.KeyEnter, tea.KeyBackspace:
		return true
	}
	return false
}

// submit is the "Shuffle & Run" action: parse, shuffle, then load.
func (m model) submit() (tea.Model, tea.Cmd) {
	d, ok := deck.Parse(m.editor.Value())
	m.shuffler.Shuffle(d)

	switch m.machine.Submit(d, ok) {
	case picker.EventSubmitEmpty:
		m.flash = msgEmptySubmit
		return m, nil
	default:
		m.flash = fmt.Sprintf("Shuffled %d cards", d.Len())
		m.setFocus(focusPresenter)
		return m, nil
	}
}

func (m model) next() (tea.Model, tea.Cmd) {
	var ev picker.Event
	switch m.machine.State().Status {
	case picker.Ready:
		ev = m.machine.Start()
	case picker.Running:
		ev = m.machine.Advance()
	case picker.Idle, picker.Finished:
		return m, nil
	}

	switch ev {
	case picker.EventStarted, picker.EventAdvanced:
		m.flash = ""
		m.anim = animation{gen: m.anim.gen + 1, frames: m.anim.frames, interval: m.anim.interval}
		if m.anim.done() {
			return m, nil
		}
		return m, m.anim.tick()
	case picker.EventFinished:
		m.flash = "All cards shown. ctrl+s to shuffle again"
	}
	return m, nil
}

func (m model) copyCard() (tea.Model, tea.Cmd) {
	s := m.machine.State()
	if s.Status != picker.Running {
		return m, nil
	}
	if err := clipboardWriteAll(strings.Join(s.Current(), "\t")); err != nil {
		m.flash = "Clipboard: " + err.Error()
		m.logger.Warn("clipboard write", zap.Error(err))
		return m, nil
	}
	m.flash = msgCopied
	return m, nil
}

func (m model) openHelp() (tea.Model, tea.Cmd) {
	content, err := renderHelp(m.helpView.Width, m.theme)
	if err != nil {
		m.flash = err.Error()
		m.logger.Error("render help", zap.Error(err))
		return m, nil
	}
	m.helpView.SetContent(content)
	m.helpView.GotoTop()
	m.showHelp = true
	return m, nil
}

func (m model) toggleFullscreen() (tea.Model, tea.Cmd) {
	m.fullscreen = !m.fullscreen
	m.resize(m.width, m.height)
	if m.fullscreen {
		m.setFocus(focusPresenter)
		return m, tea.EnterAltScreen
	}
	return m, tea.ExitAltScreen
}

func (m *model) toggleFocus() {
	if m.focus == focusEditor {
		m.setFocus(focusPresenter)
		return
	}
	if m.fullscreen {
		return
	}
	m.setFocus(focusEditor)
}

func (m *model) setFocus(f focusArea) {
	m.focus = f
	if f == focusEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
}

func (m *model) resize(w, h int) {
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	m.width, m.height = w, h
	m.help.Width = w

	bodyHeight := max(h-reservedRows, 3)
	editorW, presenterW := paneWidths(w, m.fullscreen)
	m.editor.SetSize(editorW-2, bodyHeight-3)
	m.progress.Width = min(max(presenterW-8, 10), progressMaxWidth)
	m.helpView.Width = w
	m.helpView.Height = max(h-2, 1)
}

// paneWidths splits the terminal between editor and presenter.
func paneWidths(total int, fullscreen bool) (editorW, presenterW int) {
	if fullscreen {
		return 0, total
	}
	editorW = max(total*editorWidthPercent/100, minEditorWidth+2)
	presenterW = max(total-editorW-1, cardMinWidth)
	return editorW, presenterW
}

func readClipboard() tea.Msg {
	text, err := clipboardReadAll()
	return clipboardMsg{text: text, err: err}
}
