package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/arvens/logpane/app/logging"
)

// LogPage is the full-screen log viewer. It renders the filtered,
// color-resolved history and owns the UI-facing severity threshold,
// which is independent of the logger's own level.
type LogPage struct {
	*tview.Flex
	presenter *Presenter
	view      *tview.TextView
	footer    *tview.TextView
	threshold logging.LogLevel
}

// NewLogPage creates a LogPage reading from the given store. The
// initial UI threshold admits every severity the store retains.
func NewLogPage(store *logging.Store, threshold logging.LogLevel) *LogPage {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)

	footer := tview.NewTextView().SetDynamicColors(true)

	wrapper := tview.NewFlex().SetDirection(tview.FlexRow)
	wrapper.AddItem(NewTitleFrame(view, "Log"), 0, 1, true)
	wrapper.AddItem(footer, 1, 0, false)

	page := &LogPage{
		Flex:      wrapper,
		presenter: NewPresenter(store),
		view:      view,
		footer:    footer,
		threshold: threshold,
	}

	wrapper.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'x':
			store.Clear()
			page.Refresh()
			return nil
		case 'c':
			page.copyToClipboard()
			return nil
		case '+':
			page.adjustThreshold(-1)
			return nil
		case '-':
			page.adjustThreshold(1)
			return nil
		case '1', '2', '3', '4', '5':
			page.SetThreshold(logging.LevelTrace + logging.LogLevel(event.Rune()-'1'))
			return nil
		}
		return event
	})

	page.Refresh()
	return page
}

// Primitive returns the underlying tview.Primitive.
func (p *LogPage) Primitive() tview.Primitive {
	return p.Flex
}

// Threshold returns the current UI severity threshold.
func (p *LogPage) Threshold() logging.LogLevel {
	return p.threshold
}

// SetThreshold sets the UI severity threshold and re-renders.
func (p *LogPage) SetThreshold(threshold logging.LogLevel) {
	if threshold < logging.LevelTrace {
		threshold = logging.LevelTrace
	}
	if threshold > logging.LevelError {
		threshold = logging.LevelError
	}
	p.threshold = threshold
	p.Refresh()
}

func (p *LogPage) adjustThreshold(delta int) {
	p.SetThreshold(p.threshold + logging.LogLevel(delta))
}

// Refresh rebuilds the view from the current store contents.
func (p *LogPage) Refresh() {
	records := p.presenter.Snapshot(p.threshold)

	var b strings.Builder
	for _, rec := range records {
		b.WriteString(fmt.Sprintf("[%s[]: ", rec.Level))
		for _, run := range rec.Runs {
			b.WriteString(colorTag(run.Color))
			b.WriteString(tview.Escape(run.Text))
		}
		b.WriteString("[-]\n")
	}
	p.view.SetText(b.String())

	p.footer.SetText(fmt.Sprintf(
		" Log size: %d   Displayed: %d   Level: %s+   (1-5 level, x clear, c copy)",
		p.presenter.Store().Len(), len(records), p.threshold))
}

// copyToClipboard exports the currently displayed records as plain text.
func (p *LogPage) copyToClipboard() {
	text := p.presenter.ExportPlainText(p.threshold)
	if err := clipboard.WriteAll(text); err != nil {
		logging.Warnf("LogPage: failed to copy logs to clipboard: %v", err)
	}
}

// colorTag converts a resolved run color into a tview dynamic color
// tag. The default color maps to the style reset tag.
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}
