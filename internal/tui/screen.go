// Package tui implements the terminal side of the timer: entering and
// leaving raw/alternate-screen mode, drawing frames and reading keys.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akyairhashvil/paradajz/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

var ErrNotEntered = errors.New("screen is not active")

// Screen owns the terminal while a timer runs. Enter and Restore bracket
// its use; Restore is idempotent and undoes whatever Enter managed to do.
type Screen struct {
	in       *os.File
	out      io.Writer
	renderer *Renderer
	keys     *KeyReader
	state    *term.State
	altOn    bool
	size     func() (int, int, error)
	makeRaw  func(fd int) (*term.State, error)
	restore  func(fd int, state *term.State) error
	newKeys  func(in io.Reader) (*KeyReader, error)
}

func NewScreen(in *os.File, out io.Writer, theme Theme, help string) *Screen {
	s := &Screen{
		in:       in,
		out:      out,
		renderer: NewRenderer(theme, help),
		makeRaw:  term.MakeRaw,
		restore:  term.Restore,
		newKeys:  NewKeyReader,
	}
	s.size = func() (int, int, error) {
		if f, ok := s.out.(*os.File); ok {
			return term.GetSize(int(f.Fd()))
		}
		return 0, 0, errors.New("output is not a terminal")
	}
	return s
}

func (s *Screen) Enter() error {
	if s.state != nil {
		return nil
	}
	state, err := s.makeRaw(int(s.in.Fd()))
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	s.state = state

	if _, err := io.WriteString(s.out, ansi.SetAltScreenSaveCursorMode+ansi.HideCursor+ansi.EraseEntireScreen); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	s.altOn = true

	keys, err := s.newKeys(s.in)
	if err != nil {
		return fmt.Errorf("open key reader: %w", err)
	}
	s.keys = keys
	return nil
}

func (s *Screen) Restore() error {
	var errs []error
	if s.keys != nil {
		if err := s.keys.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close key reader: %w", err))
		}
		s.keys = nil
	}
	if s.altOn {
		if _, err := io.WriteString(s.out, ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode); err != nil {
			errs = append(errs, fmt.Errorf("leave alternate screen: %w", err))
		}
		s.altOn = false
	}
	if s.state != nil {
		if err := s.restore(int(s.in.Fd()), s.state); err != nil {
			errs = append(errs, fmt.Errorf("disable raw mode: %w", err))
		}
		s.state = nil
	}
	return errors.Join(errs...)
}

// Render draws snap sized to the current terminal.
func (s *Screen) Render(snap models.Snapshot) error {
	width, height, err := s.size()
	if err != nil {
		width, height = 0, 0
	}
	_, err = io.WriteString(s.out, s.renderer.Frame(snap, width, height))
	return err
}

func (s *Screen) Poll(timeout time.Duration) (tea.KeyMsg, bool, error) {
	if s.keys == nil {
		return tea.KeyMsg{}, false, ErrNotEntered
	}
	return s.keys.Poll(timeout)
}
