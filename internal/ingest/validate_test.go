package ingest

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowStream(rows []int) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func collect(rows iter.Seq2[int, error]) ([]int, error) {
	var out []int
	for r, err := range rows {
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

func TestValidRowsForwardsValid(t *testing.T) {
	positive := func(n int) bool { return n > 0 }

	var outcome ValidationOutcome
	got, err := collect(ValidRows(rowStream([]int{1, -1, 2, 0, 3}), positive, 25, &outcome))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 3, outcome.Accepted)
	assert.Equal(t, 2, outcome.Rejected)
	assert.False(t, outcome.Aborted)
}

func TestValidRowsAbortsPastThreshold(t *testing.T) {
	positive := func(n int) bool { return n > 0 }

	// Three invalid rows against a threshold of two: the third trips the abort
	var outcome ValidationOutcome
	got, err := collect(ValidRows(rowStream([]int{5, -1, -2, 6, -3, 7}), positive, 2, &outcome))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyInvalid)
	assert.Equal(t, []int{5, 6}, got, "Rows accepted before the abort still flow through")
	assert.True(t, outcome.Aborted)
	assert.Equal(t, 3, outcome.Rejected)
}

func TestValidRowsThresholdIsExclusive(t *testing.T) {
	positive := func(n int) bool { return n > 0 }

	// Exactly threshold invalid rows must not abort
	var outcome ValidationOutcome
	got, err := collect(ValidRows(rowStream([]int{-1, -2, 9}), positive, 2, &outcome))
	require.NoError(t, err)

	assert.Equal(t, []int{9}, got)
	assert.False(t, outcome.Aborted)
	assert.Equal(t, 2, outcome.Rejected)
}

func TestValidRowsPassesThroughStreamError(t *testing.T) {
	boom := errors.New("upstream failed")
	src := func(yield func(int, error) bool) {
		if !yield(1, nil) {
			return
		}
		yield(0, boom)
	}

	var outcome ValidationOutcome
	got, err := collect(ValidRows(src, func(int) bool { return true }, 25, &outcome))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1}, got)
	assert.False(t, outcome.Aborted)
}
