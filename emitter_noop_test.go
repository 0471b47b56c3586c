package libemit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	_ EventEmitter = (*Emitter)(nil)
	_ EventEmitter = noopEmitter{}
	_ EventEmitter = (*mockEmitter)(nil)
)

func TestNoopEmitterDispatchesNothing(t *testing.T) {
	e := NewNoop()
	var ran bool

	require.NoError(t, e.On("event", func(*Context, ...any) (any, error) {
		ran = true
		return nil, nil
	}))
	require.Zero(t, e.ListenerCount("event"))

	res, err := e.Emit("event")
	require.NoError(t, err)
	require.True(t, res.None())

	res, err = e.EmitAwait(context.Background(), "event")
	require.NoError(t, err)
	require.True(t, res.None())

	require.False(t, ran)
	require.NoError(t, e.RemoveAllListeners())
	require.NoError(t, e.SetMaxListeners(-1))
}

func TestMockEmitter(t *testing.T) {
	var emitted []string
	m := &mockEmitter{tapEmit: func(event string) {
		emitted = append(emitted, event)
	}}
	m.Mock.On("Emit", "event", []any{"payload"}).Return(Results{"ok"}, nil)

	var e EventEmitter = m
	res, err := e.Emit("event", "payload")
	require.NoError(t, err)
	require.Equal(t, Results{"ok"}, res)
	require.Equal(t, []string{"event"}, emitted)

	m.AssertExpectations(t)
	m.AssertCalled(t, "Emit", "event", mock.Anything)
}
