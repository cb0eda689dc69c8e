// Package loop drives a timer from a single goroutine: tick, check for exit,
// render, then poll the keyboard for a bounded time and dispatch the key.
// The key poll is the only place the loop waits, so its timeout sets the
// loop cadence.
package loop

import (
	"context"
	"errors"
	"time"

	"github.com/akyairhashvil/paradajz/internal/config"
	"github.com/akyairhashvil/paradajz/internal/logger"
	"github.com/akyairhashvil/paradajz/internal/timer"
)

var (
	ErrNilTimer        = errors.New("loop requires a timer")
	ErrNilCollaborator = errors.New("loop requires a renderer, key source and terminal")
)

// Outcome tells why the loop stopped.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeExpired
	OutcomeTerminated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExpired:
		return "expired"
	case OutcomeTerminated:
		return "terminated"
	default:
		return "none"
	}
}

type Config struct {
	Renderer    Renderer
	Keys        KeySource
	Terminal    Terminal
	Bindings    *HandlerRegistry
	PollTimeout time.Duration
}

type Loop struct {
	timer       *timer.Timer
	resetTo     time.Duration
	renderer    Renderer
	keys        KeySource
	term        Terminal
	bindings    *HandlerRegistry
	pollTimeout time.Duration
}

// New builds a loop around t. Reset requests restore t's current duration.
func New(t *timer.Timer, cfg Config) (*Loop, error) {
	if t == nil {
		return nil, ErrNilTimer
	}
	if cfg.Renderer == nil || cfg.Keys == nil || cfg.Terminal == nil {
		return nil, ErrNilCollaborator
	}
	if cfg.Bindings == nil {
		cfg.Bindings = DefaultBindings()
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = config.PollTimeout
	}
	return &Loop{
		timer:       t,
		resetTo:     t.Duration(),
		renderer:    cfg.Renderer,
		keys:        cfg.Keys,
		term:        cfg.Terminal,
		bindings:    cfg.Bindings,
		pollTimeout: cfg.PollTimeout,
	}, nil
}

// Run enters the terminal, iterates until the timer expires or is
// terminated, and restores the terminal on every way out. Cancelling ctx
// terminates the timer before its next tick, so a cancelled run never
// reports expiry.
func (l *Loop) Run(ctx context.Context) (outcome Outcome, err error) {
	if enterErr := l.term.Enter(); enterErr != nil {
		if rerr := l.term.Restore(); rerr != nil {
			enterErr = errors.Join(enterErr, rerr)
		}
		return OutcomeNone, wrapTerminalErr("enter", enterErr)
	}
	defer func() {
		if rerr := l.term.Restore(); rerr != nil && err == nil {
			err = wrapTerminalErr("restore", rerr)
		}
	}()

	log := logger.Get()
	log.Debug().Dur("duration", l.resetTo).Msg("countdown started")
	for {
		out, done, stepErr := l.Step(ctx)
		if stepErr != nil {
			return out, stepErr
		}
		if done {
			log.Debug().Stringer("outcome", out).Msg("countdown stopped")
			return out, nil
		}
	}
}

// Step performs one iteration. done reports whether the loop must exit.
func (l *Loop) Step(ctx context.Context) (outcome Outcome, done bool, err error) {
	if ctx.Err() != nil {
		l.timer.Terminate()
	}
	l.timer.Tick()

	if l.timer.Terminated() {
		return OutcomeTerminated, true, nil
	}
	if l.timer.Expired() {
		return OutcomeExpired, true, nil
	}

	if err := l.renderer.Render(l.timer.Snapshot()); err != nil {
		return OutcomeNone, true, wrapTerminalErr("render", err)
	}

	key, ok, err := l.keys.Poll(l.pollTimeout)
	if err != nil {
		return OutcomeNone, true, wrapTerminalErr("read key", err)
	}
	if !ok {
		return OutcomeNone, false, nil
	}
	if _, err := l.bindings.Handle(l, bindingKey(key)); err != nil {
		return OutcomeNone, true, err
	}
	return OutcomeNone, false, nil
}
