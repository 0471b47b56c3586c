package libemit

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// EmitAwait dispatches event with the default Propagate policy and awaits
// any *Pending results before returning.
func (e *Emitter) EmitAwait(ctx context.Context, event string, args ...any) (Results, error) {
	return e.EmitAwaitWith(ctx, event, Propagate(), args...)
}

// EmitAwaitWith runs the synchronous dispatch first, inheriting all its
// semantics, then awaits every *Pending entry in the result sequence
// concurrently. Each resolved value overwrites its slot in place; each
// rejection is reconciled through the same policy, indexed at its slot.
// A rejection that the policy propagates fails the whole call, but only
// after every sibling handle has also settled. A handle that never settles
// blocks until ctx is cancelled.
func (e *Emitter) EmitAwaitWith(ctx context.Context, event string, policy ErrorPolicy, args ...any) (Results, error) {
	results, err := e.EmitWith(event, policy, args...)
	if err != nil || results.None() {
		return results, err
	}

	type outcome struct {
		value any
		err   error
	}

	settled := make([]outcome, len(results))
	indexes := make([]int, 0, len(results))

	var g errgroup.Group
	for i := len(results) - 1; i >= 0; i-- {
		p, ok := results[i].(*Pending)
		if !ok {
			continue
		}
		indexes = append(indexes, i)
		i, p := i, p
		g.Go(func() error {
			select {
			case <-p.done:
				settled[i] = outcome{value: p.value, err: p.err}
				return nil
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			}
		})
	}
	if len(indexes) == 0 {
		return results, nil
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Reconcile right-to-left, matching the descending order of indexes, so
	// slot removals cannot shift positions still waiting to be written.
	var failure error
	for _, i := range indexes {
		o := settled[i]
		if o.err != nil {
			reconciled, rerr := policy.resolve(results, o.err, i)
			if rerr != nil {
				if failure == nil {
					failure = rerr
				}
				continue
			}
			results = reconciled
			continue
		}
		results[i] = o.value
	}
	if failure != nil {
		return nil, failure
	}
	return results, nil
}
