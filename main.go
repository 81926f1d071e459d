package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arvens/logpane/app"
	"github.com/arvens/logpane/app/logging"
)

func main() {
	cliArgs := app.ParseCLIArgs()

	cfg, err := app.LoadConfig(cliArgs.ConfigPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	backendLevel, uiLevel, err := cfg.Levels()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if cliArgs.Verbose {
		backendLevel = logging.LevelTrace
	}

	// Setup logging before anything else.
	mainLogger := logging.NewLogger(cfg.MaxLogLen)
	mainLogger.SetLevel(backendLevel)
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		// Can't use the logger yet, so print to stderr.
		os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logFile.Close()
	mainLogger.SetWriter(logFile)

	// Set this as the default logger for any package-level calls.
	logging.SetDefault(mainLogger)

	a := app.NewApp(mainLogger, uiLevel)

	// Handle OS signals.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		a.Stop()
	}()

	// Demo traffic so the viewer has something to show, including
	// SGR-colored and multi-line messages pushed from several
	// goroutines.
	stopDemo := make(chan struct{})
	defer close(stopDemo)
	go demoProducer(stopDemo)

	logging.Infof("Main: Application starting up.")
	if err := a.Run(); err != nil {
		logging.Errorf("Main: Application exited with error: %v", err)
		os.Exit(1)
	}
	logging.Infof("Main: Application exited gracefully.")
}

// demoProducer emits sample log traffic on a timer.
func demoProducer(stop <-chan struct{}) {
	ticker := time.NewTicker(700 * time.Millisecond)
	defer ticker.Stop()
	i := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			i++
			switch i % 5 {
			case 0:
				logging.Errorf("Demo: request %d failed: %v", i, fmt.Errorf("connection refused"))
			case 1:
				logging.Warnf("Demo: request %d is slow", i)
			case 2:
				logging.Infof("Demo: request %d took \x1b[32m%dms\x1b[0m", i, 10+i%40)
			case 3:
				logging.Debugf("Demo: request %d headers:\n  Accept: */*\n  Host: localhost", i)
			default:
				logging.Tracef("Demo: raw frame %d: \x1b[35m0x%04x\x1b[0m", i, i*7)
			}
		}
	}
}
