package event

import (
	"reflect"
	"sync"

	"github.com/junction-http/junction"
)

// A Kind names one of the three lifecycle notifications a Bus fans out.
type Kind string

const (
	Before Kind = "before"
	After  Kind = "after"
	Error  Kind = "error"
)

func (k Kind) String() string { return string(k) }

func (k Kind) Valid() error {
	switch k {
	case Before, After, Error:
		return nil
	default:
		return junction.ErrNotValid
	}
}

// An Event is the payload handed to every subscribed [Listener].
//
// Request and Context are always set. Response is set only for [After]
// events, Err only for [Error] events.
type Event struct {
	Kind     Kind
	Request  *junction.Request
	Response *junction.Response
	Err      error
	Context  *junction.Context
}

// A Listener receives Events for the Kind it subscribed to.
type Listener func(Event)

// A Bus is an in-process observer registry: listeners subscribe to a
// Kind and every Publish of that Kind fans out to them in subscription
// order.
//
// The zero value is not usable; construct with [New].
type Bus struct {
	mu        sync.RWMutex
	listeners map[Kind][]Listener
}

// New constructs an empty *Bus.
func New() *Bus {
	return &Bus{listeners: make(map[Kind][]Listener)}
}

// Subscribe appends the Listener to those receiving Events of the given
// Kind. A Listener may be subscribed to multiple Kinds; subscribing the
// same Listener to the same Kind twice invokes it twice per Publish.
func (b *Bus) Subscribe(kind Kind, fn Listener) error {
	if err := kind.Valid(); err != nil {
		return err
	}

	if fn == nil {
		return junction.ErrMissingData
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[kind] = append(b.listeners[kind], fn)
	return nil
}

// Unsubscribe removes the first subscription of fn for the given Kind,
// comparing by function identity. Unsubscribing a Listener that was
// never subscribed is a no-op.
func (b *Bus) Unsubscribe(kind Kind, fn Listener) {
	if fn == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	want := reflect.ValueOf(fn).Pointer()
	ls := b.listeners[kind]
	for i, l := range ls {
		if reflect.ValueOf(l).Pointer() == want {
			b.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Publish hands e to every Listener subscribed to e.Kind, in
// subscription order, on the caller's goroutine.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	ls := b.listeners[e.Kind]
	b.mu.RUnlock()

	for _, l := range ls {
		l(e)
	}
}

// Len reports how many Listeners are subscribed to the given Kind.
func (b *Bus) Len(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[kind])
}
