package ui_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/arvens/logpane/app/ansi"
	"github.com/arvens/logpane/app/logging"
	"github.com/arvens/logpane/app/ui"
)

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		level logging.LogLevel
		want  tcell.Color
	}{
		{logging.LevelError, tcell.ColorRed},
		{logging.LevelWarn, tcell.ColorYellow},
		{logging.LevelInfo, tcell.ColorDefault},
		{logging.LevelDebug, tcell.ColorDefault},
		{logging.LevelTrace, tcell.ColorDefault},
	}
	for _, test := range tests {
		if got := ui.SeverityColor(test.level); got != test.want {
			t.Errorf("SeverityColor(%s) = %v, want %v", test.level, got, test.want)
		}
	}
}

func TestSnapshotOrderAndBaseColors(t *testing.T) {
	store := logging.NewStore(100)
	store.Push(logging.LevelInfo, "first")
	store.Push(logging.LevelWarn, "second")
	store.Push(logging.LevelError, "third")

	records := ui.NewPresenter(store).Snapshot(logging.LevelTrace)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	want := []struct {
		text  string
		color tcell.Color
	}{
		{"third", tcell.ColorRed},
		{"second", tcell.ColorYellow},
		{"first", tcell.ColorDefault},
	}
	for i, w := range want {
		rec := records[i]
		if len(rec.Runs) != 1 {
			t.Fatalf("record %d: got %d runs, want 1", i, len(rec.Runs))
		}
		if rec.Runs[0].Text != w.text {
			t.Errorf("record %d: text = %q, want %q", i, rec.Runs[0].Text, w.text)
		}
		if rec.Runs[0].Color != w.color {
			t.Errorf("record %d: color = %v, want %v", i, rec.Runs[0].Color, w.color)
		}
	}
}

func TestSnapshotAppliesThreshold(t *testing.T) {
	store := logging.NewStore(100)
	store.Push(logging.LevelTrace, "t")
	store.Push(logging.LevelDebug, "d")
	store.Push(logging.LevelInfo, "i")
	store.Push(logging.LevelWarn, "w")
	store.Push(logging.LevelError, "e")

	presenter := ui.NewPresenter(store)
	tests := []struct {
		min  logging.LogLevel
		want int
	}{
		{logging.LevelTrace, 5},
		{logging.LevelInfo, 3},
		{logging.LevelError, 1},
	}
	for _, test := range tests {
		if got := len(presenter.Snapshot(test.min)); got != test.want {
			t.Errorf("Snapshot(%s): got %d records, want %d", test.min, got, test.want)
		}
	}

	// The shown count and the total size stay independently consistent.
	if store.Len() != 5 {
		t.Errorf("store.Len() = %d, want 5", store.Len())
	}
}

func TestSnapshotDecodesEmbeddedColors(t *testing.T) {
	store := logging.NewStore(100)
	store.Push(logging.LevelWarn, "took \x1b[32m42ms\x1b[0m total")

	records := ui.NewPresenter(store).Snapshot(logging.LevelTrace)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	// The warning base color applies outside the SGR override and is
	// restored by the reset.
	want := []ansi.StyledRun{
		{Text: "took ", Color: tcell.ColorYellow},
		{Text: "42ms", Color: tcell.PaletteColor(2)},
		{Text: " total", Color: tcell.ColorYellow},
	}
	runs := records[0].Runs
	if len(runs) != len(want) {
		t.Fatalf("got runs %v, want %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d: got %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestExportPlainText(t *testing.T) {
	store := logging.NewStore(100)
	store.Push(logging.LevelInfo, "plain line")
	store.Push(logging.LevelError, "colored \x1b[31mline\x1b[0m")

	presenter := ui.NewPresenter(store)

	got := presenter.ExportPlainText(logging.LevelTrace)
	want := "colored line\nplain line"
	if got != want {
		t.Errorf("ExportPlainText = %q, want %q", got, want)
	}

	if strings.Contains(got, "\x1b") {
		t.Error("export still contains escape sequences")
	}

	// Threshold applies to the export as well.
	if got := presenter.ExportPlainText(logging.LevelError); got != "colored line" {
		t.Errorf("ExportPlainText(Error) = %q, want %q", got, "colored line")
	}
}

func TestExportPlainTextEmptyStore(t *testing.T) {
	presenter := ui.NewPresenter(logging.NewStore(10))
	if got := presenter.ExportPlainText(logging.LevelTrace); got != "" {
		t.Errorf("ExportPlainText on empty store = %q, want empty", got)
	}
}

func TestSnapshotAfterClear(t *testing.T) {
	store := logging.NewStore(100)
	for i := 0; i < 5; i++ {
		store.Push(logging.LevelInfo, "message")
	}
	store.Clear()

	presenter := ui.NewPresenter(store)
	for _, min := range []logging.LogLevel{logging.LevelTrace, logging.LevelError} {
		if got := len(presenter.Snapshot(min)); got != 0 {
			t.Errorf("Snapshot(%s) after Clear: got %d records, want 0", min, got)
		}
	}
}

func TestSnapshotMultiLineRecord(t *testing.T) {
	store := logging.NewStore(100)
	store.Push(logging.LevelWarn, "header:\n  detail")

	records := ui.NewPresenter(store).Snapshot(logging.LevelTrace)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	var b strings.Builder
	for _, run := range records[0].Runs {
		b.WriteString(run.Text)
		if run.Color != tcell.ColorYellow {
			t.Errorf("run %+v: severity base color not applied on both lines", run)
		}
	}
	if b.String() != "header:\n  detail" {
		t.Errorf("concatenated text = %q", b.String())
	}
}
