package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/arvens/logpane/app/logging"
	"github.com/arvens/logpane/app/ui"
)

// refreshInterval is how often the log view is re-rendered from the
// store. Pushes between ticks are batched into one draw.
const refreshInterval = 250 * time.Millisecond

// App orchestrates the TUI application around the log viewer page.
type App struct {
	*tview.Application
	logger  *logging.Logger
	logPage *ui.LogPage

	appCtx    context.Context
	cancelApp context.CancelFunc
}

// NewApp creates and initializes the TUI application. The uiThreshold
// is the initial display severity filter, independent of the logger's
// own level.
func NewApp(logger *logging.Logger, uiThreshold logging.LogLevel) *App {
	appCtx, cancelApp := context.WithCancel(context.Background())

	a := &App{
		Application: tview.NewApplication(),
		logger:      logger,
		appCtx:      appCtx,
		cancelApp:   cancelApp,
	}

	a.logPage = ui.NewLogPage(logger.Store(), uiThreshold)
	a.SetRoot(a.logPage.Primitive(), true)

	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlL:
			a.Stop()
			return nil
		}
		return event
	})

	return a
}

// LogPage returns the log viewer page.
func (a *App) LogPage() *ui.LogPage {
	return a.logPage
}

// Run starts the refresh loop and the tview event loop. It blocks
// until the application stops.
func (a *App) Run() error {
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-a.appCtx.Done():
				return
			case <-ticker.C:
				a.QueueUpdateDraw(a.logPage.Refresh)
			}
		}
	}()
	defer a.cancelApp()
	return a.Application.Run()
}
