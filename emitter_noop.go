package libemit

import "context"

// EventEmitter is the public dispatch contract. *Emitter is the working
// implementation; NewNoop returns a disabled one.
type EventEmitter interface {
	// AddListener registers callbacks for an event in list order.
	AddListener(event string, callbacks []Callback, opts ...ListenerOption) error

	// On registers a listener with an unlimited invocation budget.
	On(event string, callback Callback, opts ...ListenerOption) error

	// Once registers a listener that fires at most once.
	Once(event string, callback Callback, opts ...ListenerOption) error

	// RemoveListener removes the first matching record per callback.
	RemoveListener(event string, targets ...any) error

	// Off is an alias for RemoveListener.
	Off(event string, targets ...any) error

	// RemoveAllListeners clears the named events, or the whole emitter.
	RemoveAllListeners(events ...string) error

	// Emit dispatches an event synchronously to all registered listeners.
	Emit(event string, args ...any) (Results, error)

	// EmitWith dispatches with an explicit error policy.
	EmitWith(event string, policy ErrorPolicy, args ...any) (Results, error)

	// EmitAwait dispatches and awaits pending results.
	EmitAwait(ctx context.Context, event string, args ...any) (Results, error)

	// EmitAwaitWith dispatches and awaits with an explicit error policy.
	EmitAwaitWith(ctx context.Context, event string, policy ErrorPolicy, args ...any) (Results, error)

	// Listeners returns the records currently registered for an event.
	Listeners(event string) ([]*Listener, error)

	// ListenerCount returns the number of listeners for an event.
	ListenerCount(event string) int

	// EventNames returns every event name with a registry entry.
	EventNames() []string

	// SetMaxListeners adjusts the leak-warning threshold.
	SetMaxListeners(n int) error
}

// noopEmitter accepts every call and dispatches nothing, so components can
// keep an emitter wired while eventing is disabled.
type noopEmitter struct{}

// NewNoop returns an EventEmitter that drops all registrations and
// emissions.
func NewNoop() EventEmitter {
	return noopEmitter{}
}

func (noopEmitter) AddListener(string, []Callback, ...ListenerOption) error { return nil }

func (noopEmitter) On(string, Callback, ...ListenerOption) error { return nil }

func (noopEmitter) Once(string, Callback, ...ListenerOption) error { return nil }

func (noopEmitter) RemoveListener(string, ...any) error { return nil }

func (noopEmitter) Off(string, ...any) error { return nil }

func (noopEmitter) RemoveAllListeners(...string) error { return nil }

func (noopEmitter) Emit(string, ...any) (Results, error) { return nil, nil }

func (noopEmitter) EmitWith(string, ErrorPolicy, ...any) (Results, error) { return nil, nil }

func (noopEmitter) EmitAwait(context.Context, string, ...any) (Results, error) { return nil, nil }

func (noopEmitter) EmitAwaitWith(context.Context, string, ErrorPolicy, ...any) (Results, error) {
	return nil, nil
}

func (noopEmitter) Listeners(string) ([]*Listener, error) { return nil, nil }

func (noopEmitter) ListenerCount(string) int { return 0 }

func (noopEmitter) EventNames() []string { return nil }

func (noopEmitter) SetMaxListeners(int) error { return nil }
