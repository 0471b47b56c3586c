package libemit

import (
	"reflect"
)

// Callback is the function invoked for every emission of the event it is
// registered on. It receives the per-emission Context plus the emission
// arguments, and returns either a plain value or a *Pending handle whose
// resolution EmitAwait will fold back into the result sequence. A returned
// error is handled according to the emission's ErrorPolicy.
type Callback func(ctx *Context, args ...any) (any, error)

// Unlimited is the sentinel for "no limit", accepted both as a listener
// invocation count and as a max-listeners value.
const Unlimited = 0

// unlimitedRemaining marks a record that is never decremented.
const unlimitedRemaining = -1

// Listener is a single registration of a callback on an event. Records keep
// their own remaining-invocation budget; once it is exhausted the record is
// unlinked from the registry, though an emission that already snapshotted it
// still invokes it one last time.
type Listener struct {
	fn        Callback
	ptr       uintptr
	remaining int
}

func newListenerRecord(fn Callback, count int) *Listener {
	remaining := unlimitedRemaining
	if count > 0 {
		remaining = count
	}
	return &Listener{
		fn:        fn,
		ptr:       reflect.ValueOf(fn).Pointer(),
		remaining: remaining,
	}
}

// Callback returns the registered callback.
func (l *Listener) Callback() Callback {
	return l.fn
}

// Remaining returns how many invocations the record has left, or Unlimited.
func (l *Listener) Remaining() int {
	if l.remaining < 0 {
		return Unlimited
	}
	return l.remaining
}

// ListenerOptions configures a single registration.
type ListenerOptions struct {
	// Count is the number of invocations the listener is allowed, inclusive
	// of the one that exhausts it. Unlimited (the zero value) never expires.
	Count int
	// Prepend inserts the listener at the front of the event's sequence
	// instead of appending it.
	Prepend bool
}

// ListenerOption mutates ListenerOptions.
type ListenerOption func(*ListenerOptions)

// WithCount limits the listener to n invocations.
func WithCount(n int) ListenerOption {
	return func(o *ListenerOptions) {
		o.Count = n
	}
}

// WithPrepend inserts the listener ahead of existing ones.
func WithPrepend() ListenerOption {
	return func(o *ListenerOptions) {
		o.Prepend = true
	}
}

func buildListenerOptions(opts []ListenerOption) ListenerOptions {
	var o ListenerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
