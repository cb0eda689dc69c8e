package tui

import (
	"errors"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/cancelreader"
)

const (
	keyBufferSize   = 64
	readChunkSize   = 256
	maxPendingBytes = 64
	stopTimeout     = 100 * time.Millisecond
)

type keyEvent struct {
	msg tea.KeyMsg
	err error
}

// KeyReader decodes key presses from an input stream in the background and
// hands them out one at a time through Poll. Presses are buffered, so none
// are lost between polls.
type KeyReader struct {
	reader  cancelreader.CancelReader
	events  <-chan keyEvent
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewKeyReader(in io.Reader) (*KeyReader, error) {
	r, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, err
	}
	events := make(chan keyEvent, keyBufferSize)
	k := &KeyReader{
		reader:  r,
		events:  events,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go k.readLoop(events)
	return k, nil
}

func (k *KeyReader) readLoop(events chan<- keyEvent) {
	defer close(k.stopped)
	defer close(events)

	var dec keyDecoder
	buf := make([]byte, readChunkSize)
	for {
		n, err := k.reader.Read(buf)
		keys := dec.Feed(buf[:n])
		if err != nil {
			keys = append(keys, dec.Flush()...)
		}
		for _, msg := range keys {
			select {
			case events <- keyEvent{msg: msg}:
			case <-k.done:
				return
			}
		}
		if err == nil {
			continue
		}
		if errors.Is(err, cancelreader.ErrCanceled) || errors.Is(err, io.EOF) {
			return
		}
		select {
		case events <- keyEvent{err: err}:
		case <-k.done:
		}
		return
	}
}

// Poll returns the next buffered key press, waiting at most timeout. Once
// the input is exhausted it only waits out the timeout.
func (k *KeyReader) Poll(timeout time.Duration) (tea.KeyMsg, bool, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case ev, ok := <-k.events:
		if !ok {
			k.events = nil
			<-t.C
			return tea.KeyMsg{}, false, nil
		}
		if ev.err != nil {
			return tea.KeyMsg{}, false, ev.err
		}
		return ev.msg, true, nil
	case <-t.C:
		return tea.KeyMsg{}, false, nil
	}
}

// Close stops the background reader. It is safe to call more than once.
func (k *KeyReader) Close() error {
	var err error
	k.once.Do(func() {
		close(k.done)
		if k.reader.Cancel() {
			select {
			case <-k.stopped:
			case <-time.After(stopTimeout):
			}
		}
		err = k.reader.Close()
	})
	return err
}

// DecodeKeys decodes a complete input buffer. A trailing lone escape is
// reported as the escape key; any other unfinished sequence is dropped.
func DecodeKeys(b []byte) []tea.KeyMsg {
	var d keyDecoder
	return append(d.Feed(b), d.Flush()...)
}

// keyDecoder turns raw terminal input into key messages. Escape sequences
// such as arrow keys are consumed and dropped. Input ending inside an escape
// sequence or a UTF-8 rune is held until the next Feed.
type keyDecoder struct {
	pending []byte
}

func (d *keyDecoder) Feed(b []byte) []tea.KeyMsg {
	data := append(d.pending, b...)
	d.pending = nil

	var keys []tea.KeyMsg
	for len(data) > 0 {
		key, n, ok := decodeKey(data)
		if n == 0 {
			if len(data) <= maxPendingBytes {
				d.pending = data
			}
			break
		}
		if ok {
			keys = append(keys, key)
		}
		data = data[n:]
	}
	return keys
}

// Flush ends the input. A held lone escape becomes the escape key.
func (d *keyDecoder) Flush() []tea.KeyMsg {
	pending := d.pending
	d.pending = nil
	if len(pending) == 1 && pending[0] == ansi.ESC {
		return []tea.KeyMsg{{Type: tea.KeyEsc}}
	}
	return nil
}

// decodeKey decodes the key at the start of b. n is zero when b ends inside
// a sequence; ok is false when the consumed bytes carry no key.
func decodeKey(b []byte) (key tea.KeyMsg, n int, ok bool) {
	c := b[0]
	switch {
	case c == ansi.ESC:
		return decodeEscape(b)
	case c <= ansi.US || c == ansi.DEL:
		return tea.KeyMsg{Type: tea.KeyType(c)}, 1, true
	case c < utf8.RuneSelf:
		return runeKey(rune(c), false), 1, true
	case !utf8.FullRune(b):
		return tea.KeyMsg{}, 0, false
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return tea.KeyMsg{}, size, false
	}
	return runeKey(r, false), size, true
}

func decodeEscape(b []byte) (tea.KeyMsg, int, bool) {
	seq, _, n, state := ansi.DecodeSequence(b, ansi.NormalState, nil)
	if state != ansi.NormalState {
		return tea.KeyMsg{}, 0, false
	}
	switch {
	case len(seq) == 1:
		return tea.KeyMsg{Type: tea.KeyEsc}, n, true
	case len(seq) == 2 && seq[1] == 'O':
		// SS3: the key is named by one more byte.
		if len(b) < 3 {
			return tea.KeyMsg{}, 0, false
		}
		return tea.KeyMsg{}, 3, false
	case len(seq) == 2:
		return runeKey(rune(seq[1]), true), n, true
	}
	return tea.KeyMsg{}, n, false
}

func runeKey(r rune, alt bool) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: alt}
}
