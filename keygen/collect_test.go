package keygen

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_MatchesSequential(t *testing.T) {
	for _, tt := range goldenCandidates {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collect(context.Background(), tt.band, tt.target, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollect_WorkerCounts(t *testing.T) {
	seq, err := Candidates(Band5GHz, 1234567)
	require.NoError(t, err)
	want := slices.Collect(seq)

	for _, workers := range []int{-1, 0, 1, 3, 10, 64} {
		got, err := Collect(context.Background(), Band5GHz, 1234567, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestCollect_Empty(t *testing.T) {
	got, err := Collect(context.Background(), Band24GHz, 4000000000, 2)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Collect(ctx, Band24GHz, 1234567, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestCollect_HashUnavailable(t *testing.T) {
	withoutHash(t)

	_, err := Collect(context.Background(), Band24GHz, 1234567, 2)
	assert.ErrorIs(t, err, ErrHashUnavailable)
}
