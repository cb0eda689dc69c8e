package loop

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key press. Returning false lets lower priority
// bindings for the same key run.
type KeyHandler func(l *Loop) (handled bool, err error)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Priority    int
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

// DefaultBindings maps p, r and q to pause, reset and quit.
func DefaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Key:         "p",
		Description: "pause",
		Priority:    3,
		Handler: func(l *Loop) (bool, error) {
			l.timer.TogglePause()
			return true, nil
		},
	})
	r.Register(KeyBinding{
		Key:         "r",
		Description: "reset",
		Priority:    2,
		Handler: func(l *Loop) (bool, error) {
			return true, l.timer.Reset(l.resetTo)
		},
	})
	r.Register(KeyBinding{
		Key:         "q",
		Description: "quit",
		Priority:    1,
		Handler: func(l *Loop) (bool, error) {
			l.timer.Terminate()
			return true, nil
		},
	})
	return r
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle runs the bindings registered for key. Unknown keys are ignored.
func (r *HandlerRegistry) Handle(l *Loop, key string) (bool, error) {
	for _, b := range r.bindings {
		if b.Key != key {
			continue
		}
		handled, err := b.Handler(l)
		if err != nil {
			return handled, err
		}
		if handled {
			return true, nil
		}
	}
	return false, nil
}

func (r *HandlerRegistry) Bindings() []KeyBinding {
	return append([]KeyBinding(nil), r.bindings...)
}

// Help lists the described bindings as "[p]pause|[r]reset|[q]quit".
func (r *HandlerRegistry) Help() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

// bindingKey names the key a press is dispatched under. Alt and ctrl are
// ignored, so alt+p and ctrl+p act like p. Case is kept.
func bindingKey(k tea.KeyMsg) string {
	switch {
	case k.Type == tea.KeyRunes && len(k.Runes) == 1:
		return string(k.Runes)
	case k.Type >= tea.KeyCtrlA && k.Type <= tea.KeyCtrlZ:
		return string(rune('a' + int(k.Type-tea.KeyCtrlA)))
	}
	return k.String()
}
