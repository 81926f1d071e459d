package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/arvens/logpane/app/ansi"
	"github.com/arvens/logpane/app/logging"
)

// Record is a retained log entry resolved into styled runs for display.
type Record struct {
	Level logging.LogLevel
	Runs  []ansi.StyledRun
}

// SeverityColor returns the base display color for a severity: red for
// errors, yellow for warnings, the terminal default otherwise. SGR
// codes embedded in a record's text override it per run.
func SeverityColor(level logging.LogLevel) tcell.Color {
	switch level {
	case logging.LevelError:
		return tcell.ColorRed
	case logging.LevelWarn:
		return tcell.ColorYellow
	default:
		return tcell.ColorDefault
	}
}

// Presenter turns the store's filtered history into display-ready
// records. It holds no state of its own beyond the store reference.
type Presenter struct {
	store *logging.Store
}

// NewPresenter creates a Presenter reading from the given store.
func NewPresenter(store *logging.Store) *Presenter {
	return &Presenter{store: store}
}

// Store returns the underlying log store.
func (p *Presenter) Store() *logging.Store {
	return p.store
}

// Snapshot returns the retained records at or above min, newest first,
// each decoded into styled runs with its severity base color. The
// record texts are collected under the store lock and decoded after
// the traversal, so the lock is never held across the decoder.
func (p *Presenter) Snapshot(min logging.LogLevel) []Record {
	selected := p.collect(min)
	records := make([]Record, len(selected))
	for i, e := range selected {
		records[i] = Record{
			Level: e.Level,
			Runs:  ansi.Decode(e.Message, SeverityColor(e.Level)),
		}
	}
	return records
}

// ExportPlainText returns the selected records' text with all escape
// sequences stripped, newest first, joined by newlines. Intended for
// clipboard export.
func (p *Presenter) ExportPlainText(min logging.LogLevel) string {
	var b strings.Builder
	for i, e := range p.collect(min) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, run := range ansi.Decode(e.Message, tcell.ColorDefault) {
			b.WriteString(run.Text)
		}
	}
	return b.String()
}

func (p *Presenter) collect(min logging.LogLevel) []logging.LogEntry {
	var selected []logging.LogEntry
	p.store.ForEachFiltered(min, func(level logging.LogLevel, message string) {
		selected = append(selected, logging.LogEntry{Level: level, Message: message})
	})
	return selected
}
