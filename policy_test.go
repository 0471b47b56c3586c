package libemit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicyPropagate(t *testing.T) {
	res, err := Propagate().resolve(Results{"a"}, errBoom, -1)
	require.ErrorIs(t, err, errBoom)
	require.Nil(t, res)
}

func TestPolicyIgnore(t *testing.T) {
	res, err := Ignore().resolve(Results{"a"}, errBoom, -1)
	require.NoError(t, err)
	require.Equal(t, Results{"a"}, res)

	res, err = Ignore().resolve(Results{"a", "b", "c"}, errBoom, 1)
	require.NoError(t, err)
	require.Equal(t, Results{"a", "c"}, res)
}

func TestPolicyAsResult(t *testing.T) {
	res, err := AsResult().resolve(Results{"a"}, errBoom, -1)
	require.NoError(t, err)
	require.Equal(t, Results{"a", errBoom}, res)

	res, err = AsResult().resolve(Results{"a", "b"}, errBoom, 0)
	require.NoError(t, err)
	require.Equal(t, Results{errBoom, "b"}, res)
}

func TestPolicyHandler(t *testing.T) {
	replace := HandleWith(func(err error) (any, bool) {
		return "handled:" + err.Error(), true
	})
	res, err := replace.resolve(Results{"a"}, errBoom, -1)
	require.NoError(t, err)
	require.Equal(t, Results{"a", "handled:boom"}, res)

	res, err = replace.resolve(Results{"a", "b"}, errBoom, 1)
	require.NoError(t, err)
	require.Equal(t, Results{"a", "handled:boom"}, res)

	drop := HandleWith(func(error) (any, bool) { return nil, false })
	res, err = drop.resolve(Results{"a", "b"}, errBoom, 0)
	require.NoError(t, err)
	require.Equal(t, Results{"b"}, res)

	res, err = drop.resolve(Results{"a"}, errBoom, -1)
	require.NoError(t, err)
	require.Equal(t, Results{"a"}, res)
}

func TestPolicyHandlerNilBehavesLikePropagate(t *testing.T) {
	res, err := HandleWith(nil).resolve(Results{"a"}, errBoom, -1)
	require.ErrorIs(t, err, errBoom)
	require.Nil(t, res)
}

func TestPolicyIndexedRemovalRightToLeft(t *testing.T) {
	// Removing the higher index first keeps the lower one stable, which is
	// the order the async reconciliation applies.
	res := Results{"a", "b", "c", "d"}
	res, err := Ignore().resolve(res, errBoom, 3)
	require.NoError(t, err)
	res, err = Ignore().resolve(res, errBoom, 1)
	require.NoError(t, err)
	require.Equal(t, Results{"a", "c"}, res)
}
