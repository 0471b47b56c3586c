package libemit

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

const (
	// NewListenerEvent fires before a listener is appended, carrying the
	// event name, the callback and its resolved ListenerOptions.
	NewListenerEvent = "newListener"

	// RemoveListenerEvent fires after a listener has been removed, carrying
	// the event name and the callback.
	RemoveListenerEvent = "removeListener"

	// DefaultMaxListeners is the per-event listener count above which a
	// one-shot leak warning is logged.
	DefaultMaxListeners = 10
)

// Results is the ordered sequence of listener return values produced by one
// emission, one entry per listener that did not abort or get dropped by the
// error policy. A nil Results is the no-listeners sentinel; an emission that
// dispatched to at least one listener always yields a non-nil slice, even
// when every slot was dropped.
type Results []any

// None reports whether the emission found no listeners at snapshot time.
func (r Results) None() bool {
	return r == nil
}

// Emitter maps event names to ordered listener sequences and dispatches
// emissions to them in registration order. All methods are safe for
// concurrent use; callbacks are always invoked outside the emitter lock, so
// listeners may register, remove and emit reentrantly.
type Emitter struct {
	mu           sync.RWMutex
	events       map[string][]*Listener
	validEvents  map[string]struct{}
	warned       map[string]struct{}
	maxListeners int
	logger       Logger
}

// Option configures an Emitter at construction time.
type Option func(*Emitter)

// WithValidEvents restricts the emitter to the given event names. The
// allow-list is fixed for the lifetime of the emitter; NewListenerEvent and
// RemoveListenerEvent stay implicitly valid.
func WithValidEvents(events ...string) Option {
	return func(e *Emitter) {
		if len(events) == 0 {
			return
		}
		e.validEvents = make(map[string]struct{}, len(events))
		for _, event := range events {
			e.validEvents[event] = struct{}{}
		}
	}
}

// WithMaxListeners sets the initial leak-warning threshold. Unlimited
// disables the warning.
func WithMaxListeners(n int) Option {
	return func(e *Emitter) {
		if n >= 0 {
			e.maxListeners = n
		}
	}
}

// WithLogger routes advisory diagnostics through l.
func WithLogger(l Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Emitter and returns a pointer to it.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		events:       make(map[string][]*Listener),
		warned:       make(map[string]struct{}),
		maxListeners: DefaultMaxListeners,
		logger:       noopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddListener registers callbacks for event in list order. Each registration
// first fires NewListenerEvent synchronously, so observers can react before
// the new listener becomes active, then inserts a record with the configured
// invocation budget. A nil callback fails with ErrInvalidListener identified
// by its position in the batch; callbacks inserted before the failing one
// stay registered.
func (e *Emitter) AddListener(event string, callbacks []Callback, opts ...ListenerOption) error {
	if err := e.checkEvent(event); err != nil {
		return err
	}

	o := buildListenerOptions(opts)
	if o.Count < 0 {
		return errors.Wrapf(ErrInvalidArgument, "listener count %d", o.Count)
	}

	for i, cb := range callbacks {
		if cb == nil {
			return errors.Wrapf(ErrInvalidListener, "callback at position %d", i)
		}
		if _, err := e.Emit(NewListenerEvent, event, cb, o); err != nil {
			return err
		}
		e.insert(event, newListenerRecord(cb, o.Count), o.Prepend)
	}
	return nil
}

// On registers a listener with an unlimited invocation budget unless opts
// say otherwise.
func (e *Emitter) On(event string, callback Callback, opts ...ListenerOption) error {
	return e.AddListener(event, []Callback{callback}, opts...)
}

// Once registers a listener that fires at most once.
func (e *Emitter) Once(event string, callback Callback, opts ...ListenerOption) error {
	opts = append(opts[:len(opts):len(opts)], WithCount(1))
	return e.AddListener(event, []Callback{callback}, opts...)
}

func (e *Emitter) insert(event string, rec *Listener, prepend bool) {
	e.mu.Lock()

	recs := e.events[event]
	if prepend {
		recs = append([]*Listener{rec}, recs...)
	} else {
		recs = append(recs, rec)
	}
	e.events[event] = recs

	warn := false
	if e.maxListeners > Unlimited && len(recs) > e.maxListeners {
		if _, done := e.warned[event]; !done {
			e.warned[event] = struct{}{}
			warn = true
		}
	}
	count := len(recs)
	e.mu.Unlock()

	if warn {
		e.logger.WithField("event", event).Warnf(
			"possible listener leak detected: %d listeners added, use SetMaxListeners to raise the limit",
			count,
		)
	}
}

// RemoveListener removes listeners from event. Each target may be a
// Callback, a *Listener record, or a whole []Callback, []*Listener or []any
// batch; batches are snapshot-copied first so the registry's own sequence
// can be passed while it is being iterated. For every callback only the
// first record matching by function identity is removed, and a successful
// removal fires RemoveListenerEvent. Targets with no match are no-ops.
func (e *Emitter) RemoveListener(event string, targets ...any) error {
	if err := e.checkEvent(event); err != nil {
		return err
	}

	for i, target := range flattenTargets(targets) {
		cb, ok := resolveCallback(target)
		if !ok {
			return errors.Wrapf(ErrInvalidListener, "target at position %d", i)
		}
		if e.removeFirst(event, cb) {
			if _, err := e.Emit(RemoveListenerEvent, event, cb); err != nil {
				return err
			}
		}
	}
	return nil
}

// Off is an alias for RemoveListener.
func (e *Emitter) Off(event string, targets ...any) error {
	return e.RemoveListener(event, targets...)
}

// RemoveAllListeners removes every listener for the named events. Without
// arguments it clears the whole emitter, tearing down RemoveListenerEvent's
// own listeners last so removal notifications for other events still fire.
func (e *Emitter) RemoveAllListeners(events ...string) error {
	if len(events) > 0 {
		for _, event := range events {
			if err := e.removeAllFor(event); err != nil {
				return err
			}
		}
		return nil
	}

	e.mu.RLock()
	names := make([]string, 0, len(e.events))
	for name := range e.events {
		if name != RemoveListenerEvent {
			names = append(names, name)
		}
	}
	e.mu.RUnlock()

	for _, event := range names {
		if err := e.removeAllFor(event); err != nil {
			return err
		}
	}
	return e.removeAllFor(RemoveListenerEvent)
}

func (e *Emitter) removeAllFor(event string) error {
	if err := e.checkEvent(event); err != nil {
		return err
	}

	e.mu.RLock()
	snapshot := append([]*Listener(nil), e.events[event]...)
	e.mu.RUnlock()

	for _, rec := range snapshot {
		if e.removeRecord(event, rec) {
			if _, err := e.Emit(RemoveListenerEvent, event, rec.fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetMaxListeners adjusts the leak-warning threshold. Unlimited disables it.
func (e *Emitter) SetMaxListeners(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidArgument, "max listeners %d", n)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.maxListeners = n
	return nil
}

// MaxListeners returns the current leak-warning threshold.
func (e *Emitter) MaxListeners() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.maxListeners
}

// Emit dispatches event synchronously with the default Propagate policy.
func (e *Emitter) Emit(event string, args ...any) (Results, error) {
	return e.EmitWith(event, Propagate(), args...)
}

// EmitWith invokes every listener registered for event at snapshot time, in
// registration order, passing args positionally together with the
// per-emission Context. Listeners added or removed during the call do not
// affect this call's iteration. Listener errors are handled according to
// policy; a propagated error aborts the remaining listeners and discards the
// collected results. Returns the nil no-listeners sentinel when the event
// had no listeners.
func (e *Emitter) EmitWith(event string, policy ErrorPolicy, args ...any) (Results, error) {
	if err := e.checkEvent(event); err != nil {
		return nil, err
	}

	e.mu.RLock()
	snapshot := append([]*Listener(nil), e.events[event]...)
	e.mu.RUnlock()

	if len(snapshot) == 0 {
		return nil, nil
	}

	ctx := &Context{emitter: e, args: args}
	results := make(Results, 0, len(snapshot))
	for _, rec := range snapshot {
		if !e.consume(event, rec) {
			continue
		}

		ctx.results = results
		value, err := rec.fn(ctx, args...)
		if err != nil {
			results, err = policy.resolve(results, err, -1)
			if err != nil {
				return nil, err
			}
			continue
		}
		results = append(results, value)
	}
	return results, nil
}

// consume charges one invocation against the record's budget, unlinking it
// from the live sequence once exhausted. The invocation that exhausts the
// budget still fires, since it was already snapshotted; a record drained by
// a concurrent emission after this snapshot was taken does not.
func (e *Emitter) consume(event string, rec *Listener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case rec.remaining < 0:
		return true
	case rec.remaining == 0:
		return false
	}

	rec.remaining--
	if rec.remaining == 0 {
		e.dropLocked(event, rec)
	}
	return true
}

func (e *Emitter) removeFirst(event string, cb Callback) bool {
	ptr := reflect.ValueOf(cb).Pointer()

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, rec := range e.events[event] {
		if rec.ptr == ptr {
			e.dropLocked(event, rec)
			return true
		}
	}
	return false
}

func (e *Emitter) removeRecord(event string, rec *Listener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.dropLocked(event, rec)
}

// dropLocked unlinks the exact record from the live sequence, if still
// present. Callers hold the write lock.
func (e *Emitter) dropLocked(event string, rec *Listener) bool {
	recs := e.events[event]
	for i, candidate := range recs {
		if candidate == rec {
			e.events[event] = append(recs[:i:i], recs[i+1:]...)
			return true
		}
	}
	return false
}

func flattenTargets(targets []any) []any {
	if len(targets) != 1 {
		return targets
	}

	switch batch := targets[0].(type) {
	case []any:
		return append([]any(nil), batch...)
	case []Callback:
		flat := make([]any, len(batch))
		for i, cb := range batch {
			flat[i] = cb
		}
		return flat
	case []*Listener:
		flat := make([]any, len(batch))
		for i, rec := range batch {
			flat[i] = rec
		}
		return flat
	}
	return targets
}

func resolveCallback(target any) (Callback, bool) {
	switch v := target.(type) {
	case Callback:
		return v, v != nil
	case func(*Context, ...any) (any, error):
		return v, v != nil
	case *Listener:
		if v == nil {
			return nil, false
		}
		return v.fn, v.fn != nil
	}
	return nil, false
}
