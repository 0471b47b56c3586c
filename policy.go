package libemit

// ErrorHandler inspects a listener error and decides what takes its place in
// the result sequence. Returning ok=false drops the slot entirely.
type ErrorHandler func(err error) (result any, ok bool)

type policyMode uint8

const (
	policyPropagate policyMode = iota
	policyIgnore
	policyAsResult
	policyHandle
)

// ErrorPolicy is the per-emission directive governing listener errors. The
// zero value propagates, which aborts the emission on the first listener
// error and surfaces it to the caller.
type ErrorPolicy struct {
	mode    policyMode
	handler ErrorHandler
}

// Propagate returns the default policy: the first listener error aborts the
// emission and is returned to the caller.
func Propagate() ErrorPolicy {
	return ErrorPolicy{mode: policyPropagate}
}

// Ignore drops listener errors silently, leaving no slot for them in the
// result sequence.
func Ignore() ErrorPolicy {
	return ErrorPolicy{mode: policyIgnore}
}

// AsResult stores the error itself as the listener's result.
func AsResult() ErrorPolicy {
	return ErrorPolicy{mode: policyAsResult}
}

// HandleWith delegates to fn: its result replaces the slot when ok, the slot
// is dropped otherwise. A nil fn behaves like Propagate.
func HandleWith(fn ErrorHandler) ErrorPolicy {
	if fn == nil {
		return Propagate()
	}
	return ErrorPolicy{mode: policyHandle, handler: fn}
}

// resolve applies the directive to err. pos < 0 means append semantics (a
// synchronous failure with nothing stored yet); pos >= 0 reconciles an
// already-stored slot, removing it when the directive drops the error.
// Callers that resolve several positions in one pass must do so from the
// highest index down, since removals shift everything to their right.
func (p ErrorPolicy) resolve(results Results, err error, pos int) (Results, error) {
	switch p.mode {
	case policyIgnore:
		if pos >= 0 {
			results = removeAt(results, pos)
		}
		return results, nil

	case policyAsResult:
		if pos >= 0 {
			results[pos] = err
			return results, nil
		}
		return append(results, err), nil

	case policyHandle:
		value, ok := p.handler(err)
		if !ok {
			if pos >= 0 {
				results = removeAt(results, pos)
			}
			return results, nil
		}
		if pos >= 0 {
			results[pos] = value
			return results, nil
		}
		return append(results, value), nil

	default:
		return nil, err
	}
}

func removeAt(results Results, pos int) Results {
	return append(results[:pos], results[pos+1:]...)
}
