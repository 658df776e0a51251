package try_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-core/erno"
	"github.com/next-trace/scg-core/try"
)

func parsePort(s string) try.Result[int] {
	return try.Call(func(f *try.Frame) int {
		f.AssertString(s)
		n, err := strconv.Atoi(s)
		f.Assert(err == nil, erno.String)
		f.AssertRange(n > 0 && n < 1<<16)

		return n
	})
}

func TestCallSuccessAndFailure(t *testing.T) {
	t.Parallel()

	r := parsePort("8080")
	require.True(t, r.OK())
	v, code := r.Value()
	assert.Equal(t, 8080, v)
	assert.Equal(t, erno.None, code)
	assert.NoError(t, r.Err())

	cases := map[string]erno.Code{
		"":      erno.String,
		"http":  erno.String,
		"0":     erno.Range,
		"70000": erno.Range,
	}
	for in, want := range cases {
		r := parsePort(in)
		assert.False(t, r.OK(), in)
		assert.Equal(t, want, r.Code(), in)
		v, _ := r.Value()
		assert.Zero(t, v, "failed result must carry the zero value")
		assert.True(t, errors.Is(r.Err(), want), in)
		assert.Equal(t, 80, r.Or(80), in)
	}
}

func TestCallCleanupCanFailTheResult(t *testing.T) {
	t.Parallel()

	r := try.Call(func(*try.Frame) string { return "kept?" },
		try.Finally(func(f *try.Frame) { f.SetCode(erno.State) }),
	)

	assert.Equal(t, erno.State, r.Code())
	v, _ := r.Value()
	assert.Empty(t, v)
}

func TestTakePropagatesFailedResults(t *testing.T) {
	t.Parallel()

	var seen []int
	code := try.Run(func(f *try.Frame) {
		seen = append(seen, try.Take(f, parsePort("443")))
		seen = append(seen, try.Take(f, parsePort("0")))
		seen = append(seen, -1)
	})

	assert.Equal(t, erno.Range, code)
	assert.Equal(t, []int{443}, seen)
}

func TestResultConstructors(t *testing.T) {
	t.Parallel()

	ok := try.Ok("x")
	assert.True(t, ok.OK())
	assert.Equal(t, "x", ok.Or("y"))

	failed := try.Failure[string](erno.Handle)
	assert.False(t, failed.OK())
	assert.Equal(t, "y", failed.Or("y"))

	assert.True(t, try.Failure[int](erno.None).OK())

	var zero try.Result[int]
	assert.True(t, zero.OK())

	assert.True(t, try.Call[int](nil).OK())
}
