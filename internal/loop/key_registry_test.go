package loop

import (
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/paradajz/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

func newBareLoop(t *testing.T, d time.Duration) *Loop {
	t.Helper()
	ctrl := gomock.NewController(t)
	tm, _, _ := testutil.NewTimer().WithDuration(d).Build(t)
	l, err := New(tm, Config{Renderer: NewMockRenderer(ctrl), Keys: NewMockKeySource(ctrl), Terminal: NewMockTerminal(ctrl)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return l
}

func TestDefaultBindingsHelp(t *testing.T) {
	if got, want := DefaultBindings().Help(), "[p]pause|[r]reset|[q]quit"; got != want {
		t.Fatalf("Help() = %q, want %q", got, want)
	}
}

func TestDefaultBindingsDispatch(t *testing.T) {
	l := newBareLoop(t, time.Minute)
	reg := DefaultBindings()

	if handled, err := reg.Handle(l, "p"); !handled || err != nil {
		t.Fatalf("p: handled=%v err=%v", handled, err)
	}
	if !l.timer.Paused() {
		t.Fatalf("expected paused after p")
	}
	if handled, _ := reg.Handle(l, "z"); handled {
		t.Fatalf("unknown key must not be handled")
	}
	if handled, err := reg.Handle(l, "r"); !handled || err != nil {
		t.Fatalf("r: handled=%v err=%v", handled, err)
	}
	if l.timer.Paused() {
		t.Fatalf("reset must clear pause")
	}
	if handled, _ := reg.Handle(l, "q"); !handled || !l.timer.Terminated() {
		t.Fatalf("q must terminate")
	}
}

func TestRegistryPriorityAndFallthrough(t *testing.T) {
	l := newBareLoop(t, time.Minute)
	reg := NewHandlerRegistry()
	var order []string
	reg.Register(KeyBinding{Key: "k", Priority: 1, Description: "low", Handler: func(*Loop) (bool, error) {
		order = append(order, "low")
		return true, nil
	}})
	reg.Register(KeyBinding{Key: "k", Priority: 5, Handler: func(*Loop) (bool, error) {
		order = append(order, "high")
		return false, nil
	}})

	if handled, err := reg.Handle(l, "k"); !handled || err != nil {
		t.Fatalf("handled=%v err=%v", handled, err)
	}
	if len(order) != 2 || order[0] != "high" || order[1] != "low" {
		t.Fatalf("unexpected order %v", order)
	}
	if got := reg.Help(); got != "[k]low" {
		t.Fatalf("Help() = %q", got)
	}
	if n := len(reg.Bindings()); n != 2 {
		t.Fatalf("Bindings() len = %d", n)
	}
}

func TestRegistryStopsOnError(t *testing.T) {
	l := newBareLoop(t, time.Minute)
	reg := NewHandlerRegistry()
	boom := errors.New("boom")
	called := false
	reg.Register(KeyBinding{Key: "k", Priority: 2, Handler: func(*Loop) (bool, error) { return false, boom }})
	reg.Register(KeyBinding{Key: "k", Priority: 1, Handler: func(*Loop) (bool, error) {
		called = true
		return true, nil
	}})
	if _, err := reg.Handle(l, "k"); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if called {
		t.Fatalf("lower binding must not run after an error")
	}
}

func TestBindingKeyIgnoresModifiers(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, "p"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Alt: true}, "q"},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, "r"},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, "a"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("P")}, "P"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
	}
	for _, tc := range cases {
		if got := bindingKey(tc.msg); got != tc.want {
			t.Fatalf("bindingKey(%s) = %q, want %q", tc.msg, got, tc.want)
		}
	}
}
