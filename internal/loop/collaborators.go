package loop

import (
	"time"

	"github.com/akyairhashvil/paradajz/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

//go:generate mockgen -source=collaborators.go -destination=mock_collaborators_test.go -package=loop

// Renderer draws one frame for the given timer view.
type Renderer interface {
	Render(snap models.Snapshot) error
}

// KeySource yields at most one key press per call, waiting no longer than
// timeout. ok is false when nothing was pressed.
type KeySource interface {
	Poll(timeout time.Duration) (key tea.KeyMsg, ok bool, err error)
}

// Terminal is the scoped terminal mode the loop runs inside.
type Terminal interface {
	Enter() error
	Restore() error
}
