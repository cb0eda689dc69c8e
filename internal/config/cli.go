package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"
)

var (
	ErrNegativeDuration = errors.New("duration must not be negative")
	ErrDurationTooLarge = errors.New("duration is too large")
)

// Options holds the parsed command line.
type Options struct {
	Duration    time.Duration
	ShowVersion bool
}

// ParseArgs parses the command line arguments (without the program name).
// Usage and parse errors are written to out. pflag.ErrHelp is returned
// unchanged when help was requested.
func ParseArgs(args []string, out io.Writer) (Options, error) {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Simple timer.\n\nUsage: %s [flags]\n\n", AppName)
		fs.PrintDefaults()
	}

	minutes := fs.Int64P("duration", "d", DefaultDurationMinutes, "Duration of interval in minutes")
	version := fs.BoolP("version", "V", false, "Print version")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	d, err := MinutesToDuration(*minutes)
	if err != nil {
		return Options{}, err
	}
	return Options{Duration: d, ShowVersion: *version}, nil
}

// MinutesToDuration validates and converts a minute count.
func MinutesToDuration(minutes int64) (time.Duration, error) {
	if minutes < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDuration, minutes)
	}
	if minutes > MaxDurationMinutes {
		return 0, fmt.Errorf("%w: %d minutes", ErrDurationTooLarge, minutes)
	}
	return time.Duration(minutes) * time.Minute, nil
}
