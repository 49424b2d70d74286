package utils

import (
	"sort"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelForProcessesEverything(t *testing.T) {
	t.Parallel()

	input := make([]int, 100)
	for i := range input {
		input[i] = i
	}

	group := ParallelFor(input, func(i int) (int, error) {
		return i * 2, nil
	}, ParallelOptions{Routines: 4})

	result, err := group.Collect()
	require.NoError(t, err)

	sort.Ints(result)
	require.Len(t, result, 100)
	for i, r := range result {
		assert.Equal(t, i*2, r)
	}
}

func TestParallelForEmptyInput(t *testing.T) {
	t.Parallel()

	result, err := ParallelFor(nil, func(i int) (int, error) {
		return i, nil
	}).Collect()

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestParallelForStopsOnError(t *testing.T) {
	t.Parallel()

	input := make([]int, 1000)
	for i := range input {
		input[i] = i
	}

	var calls atomic.Int32
	group := ParallelFor(input, func(i int) (int, error) {
		calls.Add(1)
		if i == 3 {
			return 0, errors.New("boom")
		}
		return i, nil
	}, ParallelOptions{Routines: 2})

	_, err := group.Collect()

	assert.EqualError(t, err, "boom")
	assert.True(t, group.Aborted())
	assert.Less(t, int(calls.Load()), len(input))
}

func TestPathAbs(t *testing.T) {
	t.Parallel()

	path, err := PathAbs("a", "..", "b")
	require.NoError(t, err)

	assert.True(t, len(path) > 1)
	assert.Equal(t, "b", path[len(path)-1:])
}
