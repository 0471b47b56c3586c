package libemit

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidEvent is returned when an event name is not part of the
	// emitter's allow-list.
	ErrInvalidEvent = errors.New("event name is not allowed by this emitter")

	// ErrInvalidListener is returned when a callback is nil or a removal
	// target cannot be resolved to a callback.
	ErrInvalidListener = errors.New("listener is not callable")

	// ErrInvalidRegistry is returned when a nil mapping is passed to SetRegistry.
	ErrInvalidRegistry = errors.New("registry must be a non-nil map")

	// ErrInvalidArgument is returned for bad configuration values, such as a
	// negative listener count or max-listeners limit.
	ErrInvalidArgument = errors.New("invalid argument")
)
