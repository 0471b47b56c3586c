package libemit

import (
	"github.com/pkg/errors"
)

// Listeners returns the records currently registered for event, lazily
// creating the registry entry on first read. The returned slice shares its
// records with the emitter, so counter mutations are visible to callers;
// structural changes still go through RemoveListener and friends.
func (e *Emitter) Listeners(event string) ([]*Listener, error) {
	if err := e.checkEvent(event); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	recs, ok := e.events[event]
	if !ok {
		recs = make([]*Listener, 0)
		e.events[event] = recs
	}
	return recs, nil
}

// Registry returns the live backing mapping of the emitter.
func (e *Emitter) Registry() map[string][]*Listener {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.events
}

// SetRegistry replaces the entire backing mapping, enabling registries to be
// swapped or shared between emitter instances.
func (e *Emitter) SetRegistry(reg map[string][]*Listener) error {
	if reg == nil {
		return errors.WithStack(ErrInvalidRegistry)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.events = reg
	return nil
}

// EventNames returns the names of every event with a registry entry, in no
// particular order.
func (e *Emitter) EventNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.events))
	for name := range e.events {
		names = append(names, name)
	}
	return names
}

// ListenerCount returns the number of listeners registered for event.
func (e *Emitter) ListenerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.events[event])
}

// checkEvent enforces the allow-list. The internal registration events stay
// valid once an allow-list is configured, so observers can always be
// notified.
func (e *Emitter) checkEvent(event string) error {
	if e.validEvents == nil || event == NewListenerEvent || event == RemoveListenerEvent {
		return nil
	}
	if _, ok := e.validEvents[event]; !ok {
		return errors.Wrapf(ErrInvalidEvent, "event %q", event)
	}
	return nil
}
