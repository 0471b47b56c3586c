package libemit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPendingResolve(t *testing.T) {
	p := NewPending()
	go p.Resolve("value")

	v, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "value", v)
}

func TestPendingReject(t *testing.T) {
	p := NewPending()
	go p.Reject(errBoom)

	v, err := p.Wait(context.Background())
	require.ErrorIs(t, err, errBoom)
	require.Nil(t, v)
}

func TestPendingSettlesOnce(t *testing.T) {
	p := NewPending()
	p.Resolve("first")
	p.Resolve("second")
	p.Reject(errBoom)

	v, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "first", v)

	select {
	case <-p.Done():
	default:
		t.Fatal("expected handle to be settled")
	}
}

func TestPendingWaitHonorsContext(t *testing.T) {
	p := NewPending()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAsyncHelper(t *testing.T) {
	v, err := Async(func() (any, error) {
		return 42, nil
	}).Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = Async(func() (any, error) {
		return nil, errBoom
	}).Wait(context.Background())
	require.ErrorIs(t, err, errBoom)
}
