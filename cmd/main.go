package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"breathwork/internal/core/session"
	"breathwork/internal/core/tick"
	"breathwork/internal/display"
	"breathwork/internal/preferences"
	"breathwork/internal/storage"
)

const appName = "breathwork"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		patternID   string
		quickRelief bool
		listOnly    bool
		cycles      int
		configPath  string
		logLevel    string
		tickEvery   time.Duration
	)

	flagSet := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flagSet.StringVarP(&patternID, "pattern", "p", "", "pattern id to run (default from settings)")
	flagSet.BoolVarP(&quickRelief, "quick-relief", "q", false, "run the quick-relief pattern")
	flagSet.BoolVarP(&listOnly, "list", "l", false, "list available patterns and exit")
	flagSet.IntVarP(&cycles, "cycles", "n", 0, "stop after this many full cycles (0 runs until interrupted)")
	flagSet.StringVar(&configPath, "config", "", "settings file (default: user config dir)")
	flagSet.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flagSet.DurationVar(&tickEvery, "tick", 0, "tick interval override, e.g. 100ms for a fast preview")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return fmt.Errorf("unexpected argument: %s", extra[0])
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	settings, err := loadSettings(configPath)
	if err != nil {
		return err
	}
	if tickEvery > 0 {
		settings.TickInterval = tickEvery
	}
	if patternID != "" {
		settings.DefaultPattern = patternID
	}

	patterns, err := storage.LoadCatalog(settings)
	if err != nil {
		return err
	}
	if listOnly {
		fmt.Print(display.PatternList(patterns.List()))
		return nil
	}

	config := settings.SessionConfig(patterns)
	if quickRelief {
		config.InitialPattern = ""
	}
	ticker := tick.NewTicker(config.TickInterval)
	controller, err := session.New(patterns, ticker, config, session.WithLogger(logger))
	if err != nil {
		return err
	}
	defer controller.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := controller.Subscribe(0)
	if quickRelief {
		err = controller.QuickRelief()
	} else {
		err = controller.Start()
	}
	if err != nil {
		return err
	}
	logger.Info("session running", "interval", ticker.Interval(), "cycles", cycles)

	for {
		select {
		case <-ctx.Done():
			controller.Pause()
			fmt.Println(display.Line(controller.Snapshot()))
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			fmt.Println(display.Line(event.Snapshot))
			if cycles > 0 && event.Snapshot.Cycles >= cycles {
				controller.Reset()
				return nil
			}
		}
	}
}

func loadSettings(configPath string) (preferences.Settings, error) {
	var (
		settings preferences.Settings
		err      error
	)
	if configPath != "" {
		settings, err = storage.LoadSettingsFile(configPath)
	} else {
		settings, err = storage.LoadSettings(appName)
	}
	if err != nil {
		return settings, err
	}
	if err := preferences.ApplyEnv(&settings); err != nil {
		return settings, err
	}
	return settings, nil
}
