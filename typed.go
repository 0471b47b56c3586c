package libemit

// OnTyped registers a listener that only fires when the first emission
// argument is a T, sparing callers the type assertion. Emissions whose first
// argument is absent or of another type are skipped with a nil result.
func OnTyped[T any](e *Emitter, event string, fn func(T), opts ...ListenerOption) error {
	return e.On(event, typedCallback(fn), opts...)
}

// OnceTyped is OnTyped with a single-invocation budget.
func OnceTyped[T any](e *Emitter, event string, fn func(T), opts ...ListenerOption) error {
	return e.Once(event, typedCallback(fn), opts...)
}

// EmitTyped emits event carrying value as its single argument.
func EmitTyped[T any](e *Emitter, event string, value T) (Results, error) {
	return e.Emit(event, value)
}

func typedCallback[T any](fn func(T)) Callback {
	return func(_ *Context, args ...any) (any, error) {
		if len(args) == 0 {
			return nil, nil
		}
		if value, ok := args[0].(T); ok {
			fn(value)
		}
		return nil, nil
	}
}
