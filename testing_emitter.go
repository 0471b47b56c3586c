package libemit

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockEmitter struct {
	mock.Mock

	tapEmit func(event string)
}

func (m *mockEmitter) AddListener(event string, callbacks []Callback, opts ...ListenerOption) error {
	args := m.Called(event, callbacks, opts)
	return args.Error(0)
}

func (m *mockEmitter) On(event string, callback Callback, opts ...ListenerOption) error {
	args := m.Called(event, callback, opts)
	return args.Error(0)
}

func (m *mockEmitter) Once(event string, callback Callback, opts ...ListenerOption) error {
	args := m.Called(event, callback, opts)
	return args.Error(0)
}

func (m *mockEmitter) RemoveListener(event string, targets ...any) error {
	args := m.Called(event, targets)
	return args.Error(0)
}

func (m *mockEmitter) Off(event string, targets ...any) error {
	args := m.Called(event, targets)
	return args.Error(0)
}

func (m *mockEmitter) RemoveAllListeners(events ...string) error {
	args := m.Called(events)
	return args.Error(0)
}

func (m *mockEmitter) Emit(event string, emitArgs ...any) (Results, error) {
	if m.tapEmit != nil {
		m.tapEmit(event)
	}
	args := m.Called(event, emitArgs)
	return mockResults(args.Get(0)), args.Error(1)
}

func (m *mockEmitter) EmitWith(event string, policy ErrorPolicy, emitArgs ...any) (Results, error) {
	args := m.Called(event, policy, emitArgs)
	return mockResults(args.Get(0)), args.Error(1)
}

func (m *mockEmitter) EmitAwait(ctx context.Context, event string, emitArgs ...any) (Results, error) {
	args := m.Called(ctx, event, emitArgs)
	return mockResults(args.Get(0)), args.Error(1)
}

func (m *mockEmitter) EmitAwaitWith(ctx context.Context, event string, policy ErrorPolicy, emitArgs ...any) (Results, error) {
	args := m.Called(ctx, event, policy, emitArgs)
	return mockResults(args.Get(0)), args.Error(1)
}

func (m *mockEmitter) Listeners(event string) ([]*Listener, error) {
	args := m.Called(event)
	recs, _ := args.Get(0).([]*Listener)
	return recs, args.Error(1)
}

func (m *mockEmitter) ListenerCount(event string) int {
	args := m.Called(event)
	return args.Int(0)
}

func (m *mockEmitter) EventNames() []string {
	args := m.Called()
	names, _ := args.Get(0).([]string)
	return names
}

func (m *mockEmitter) SetMaxListeners(n int) error {
	args := m.Called(n)
	return args.Error(0)
}

func mockResults(v any) Results {
	r, _ := v.(Results)
	return r
}
