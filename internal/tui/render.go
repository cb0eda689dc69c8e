package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/paradajz/internal/config"
	"github.com/akyairhashvil/paradajz/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/x/ansi"
)

// Renderer lays out a timer frame: blank space, a status line, a gauge and
// the key help.
type Renderer struct {
	theme     Theme
	help      string
	bar       progress.Model
	pausedBar progress.Model
}

func NewRenderer(theme Theme, help string) *Renderer {
	return &Renderer{
		theme:     theme,
		help:      help,
		bar:       newBar(theme.Bar, theme.BarEmpty),
		pausedBar: newBar(theme.PausedBar, theme.BarEmpty),
	}
}

func newBar(fill, empty string) progress.Model {
	bar := progress.New(progress.WithSolidFill(fill), progress.WithoutPercentage())
	bar.EmptyColor = empty
	return bar
}

// StatusLine renders "MM:SS - ⏰ HH:MM:SS, NN%".
func StatusLine(snap models.Snapshot) string {
	return fmt.Sprintf("%s - %s %s, %d%%", snap.Remaining, config.AlarmClock, snap.FinishAt, snap.Percent())
}

// Frame returns the full screen contents for a width x height terminal,
// starting with cursor-home and clear sequences. Lines end in CRLF since the
// terminal is in raw mode.
func (r *Renderer) Frame(snap models.Snapshot, width, height int) string {
	if width <= 0 {
		width = config.FallbackWidth
	}
	if height <= 0 {
		height = config.FallbackHeight
	}
	inner := max(width-2*config.HorizontalPadding, 1)
	pad := strings.Repeat(" ", config.HorizontalPadding)

	text := r.theme.Text
	bar := r.bar
	if snap.Paused {
		text = r.theme.PausedText
		bar = r.pausedBar
	}
	bar.Width = inner

	top := height * config.TopPaddingPercent / 100
	lines := make([]string, top, top+4)
	lines = append(lines,
		pad+text.Render(ansi.Truncate(StatusLine(snap), inner, "")),
		pad+bar.ViewAs(snap.Ratio),
	)
	if r.help != "" && top+4 <= height {
		lines = append(lines, "", pad+r.theme.Help.Render(ansi.Truncate(r.help, inner, "")))
	}
	return ansi.CursorHomePosition + ansi.EraseEntireScreen + strings.Join(lines, "\r\n")
}
