package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/akyairhashvil/paradajz/internal/config"
	"github.com/akyairhashvil/paradajz/internal/logger"
	"github.com/akyairhashvil/paradajz/internal/loop"
	"github.com/akyairhashvil/paradajz/internal/notify"
	"github.com/akyairhashvil/paradajz/internal/timer"
	"github.com/akyairhashvil/paradajz/internal/tui"
	"github.com/akyairhashvil/paradajz/internal/util"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 1. Parse the command line
	opts, err := config.ParseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 2
	}
	if opts.ShowVersion {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, config.VersionLabel())
		return 0
	}

	// 2. Logging goes to a file; the terminal belongs to the timer
	logPath := filepath.Join(util.DataDir(config.AppName), config.LogFileName)
	closeLog, err := logger.OpenFile(logPath, zerolog.InfoLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Logging disabled: %v\n", err)
	} else {
		defer func() { _ = closeLog() }()
	}

	// 3. Run the countdown
	if err := countdown(opts); err != nil {
		util.LogError("countdown", err)
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

func countdown(opts config.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notice := notify.NewExpiryNotice(notify.NewDBusNotifier(config.AppName), config.ExpiryMessage, config.NotificationTimeout)
	t, err := timer.New(opts.Duration, timer.WithExpiryHandler(notice))
	if err != nil {
		return err
	}

	bindings := loop.DefaultBindings()
	screen := tui.NewScreen(os.Stdin, os.Stdout, tui.ThemeFromEnv(), bindings.Help())
	l, err := loop.New(t, loop.Config{
		Renderer:    screen,
		Keys:        screen,
		Terminal:    screen,
		Bindings:    bindings,
		PollTimeout: config.PollTimeout,
	})
	if err != nil {
		return err
	}

	outcome, err := l.Run(ctx)
	logger.Get().Info().
		Stringer("outcome", outcome).
		Dur("duration", opts.Duration).
		Dur("elapsed", t.Elapsed()).
		Msg("timer finished")
	return err
}
