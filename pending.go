package libemit

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Pending is a computation handle a callback may return instead of a plain
// value. It settles exactly once, either through Resolve or Reject; later
// calls are no-ops. EmitAwait folds settled handles back into the result
// sequence.
type Pending struct {
	once  sync.Once
	done  chan struct{}
	value any
	err   error
}

// NewPending creates an unsettled handle.
func NewPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Async runs fn in its own goroutine and returns a handle that settles with
// its outcome.
func Async(fn func() (any, error)) *Pending {
	p := NewPending()
	go func() {
		v, err := fn()
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(v)
	}()
	return p
}

// Resolve settles the handle with a value.
func (p *Pending) Resolve(value any) {
	p.once.Do(func() {
		p.value = value
		close(p.done)
	})
}

// Reject settles the handle with an error. A nil err still settles the
// handle, as a resolution with a nil value.
func (p *Pending) Reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Done returns a channel closed once the handle has settled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the handle settles or ctx is cancelled. A handle that is
// never settled blocks forever under context.Background.
func (p *Pending) Wait(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}
}
