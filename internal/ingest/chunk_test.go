package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushChunksEmptyStream(t *testing.T) {
	calls := 0
	total, err := FlushChunks(rowStream(nil), 3, func(chunk []int) (int, error) {
		calls++
		return len(chunk), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, calls, "Empty stream should never hit the sink")
}

func TestFlushChunksPartialChunk(t *testing.T) {
	var chunks [][]int
	total, err := FlushChunks(rowStream([]int{1, 2}), 3, func(chunk []int) (int, error) {
		cp := append([]int(nil), chunk...)
		chunks = append(chunks, cp)
		return len(chunk), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, [][]int{{1, 2}}, chunks)
}

func TestFlushChunksExactBoundary(t *testing.T) {
	var chunks [][]int
	total, err := FlushChunks(rowStream([]int{1, 2, 3}), 3, func(chunk []int) (int, error) {
		cp := append([]int(nil), chunk...)
		chunks = append(chunks, cp)
		return len(chunk), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, chunks, 1, "A stream of exactly one chunk flushes once")
}

func TestFlushChunksSplitsOversize(t *testing.T) {
	var chunks [][]int
	total, err := FlushChunks(rowStream([]int{1, 2, 3, 4, 5, 6, 7}), 3, func(chunk []int) (int, error) {
		cp := append([]int(nil), chunk...)
		chunks = append(chunks, cp)
		return len(chunk), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, chunks)
}

func TestFlushChunksKeepsTotalOnSinkError(t *testing.T) {
	boom := errors.New("sink failed")
	calls := 0
	total, err := FlushChunks(rowStream([]int{1, 2, 3, 4, 5, 6}), 3, func(chunk []int) (int, error) {
		calls++
		if calls == 2 {
			return 0, boom
		}
		return len(chunk), nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, total, "Rows flushed before the failure stay counted")
}

func TestFlushChunksStopsOnStreamError(t *testing.T) {
	boom := errors.New("stream failed")
	src := func(yield func(int, error) bool) {
		for i := 1; i <= 4; i++ {
			if !yield(i, nil) {
				return
			}
		}
		yield(0, boom)
	}

	var chunks [][]int
	total, err := FlushChunks(src, 3, func(chunk []int) (int, error) {
		cp := append([]int(nil), chunk...)
		chunks = append(chunks, cp)
		return len(chunk), nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, total, "Only full chunks before the error are flushed")
	assert.Equal(t, [][]int{{1, 2, 3}}, chunks)
}
