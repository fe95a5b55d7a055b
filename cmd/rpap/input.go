package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// inputReloadedMsg carries fresh file contents into the editor.
type inputReloadedMsg struct {
	path string
	text string
}

// readInput loads raw text from a file, or stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// inputWatcher reloads the input file whenever it changes on disk. It only
// replaces the editor text; submitting stays a user action.
type inputWatcher struct {
	path     string
	send     func(tea.Msg)
	debounce time.Duration
	logger   *zap.Logger
}

func newInputWatcher(path string, send func(tea.Msg), logger *zap.Logger) *inputWatcher {
	return &inputWatcher{
		path:     path,
		send:     send,
		debounce: watchDebounce * time.Millisecond,
		logger:   logger,
	}
}

// Run blocks until ctx is done. The parent directory is watched so that
// editors which save by rename are still seen.
func (w *inputWatcher) Run(ctx context.Context) error {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w.logger.Debug("watching input", zap.String("path", abs))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			text, err := readInput(abs, nil)
			if err != nil {
				w.logger.Warn("reload input", zap.Error(err))
				continue
			}
			w.logger.Info("input reloaded", zap.String("path", abs), zap.Int("bytes", len(text)))
			w.send(inputReloadedMsg{path: w.path, text: text})
		}
	}
}
