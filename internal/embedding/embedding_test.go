package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEmbedder struct {
	batches [][]string
	err     error
	closed  bool
}

func (r *recordingEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	r.batches = append(r.batches, texts)
	if r.err != nil {
		return nil, r.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(len(texts[i])), 1}
	}
	return out, nil
}

func (r *recordingEmbedder) Close() error {
	r.closed = true
	return nil
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 2, 3}, []float32{2, 4, 6}), 1e-6)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-6)

	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float32{1, 2}, []float32{1}))
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
}

func TestCacheEncodesUnseenTextsOnce(t *testing.T) {
	inner := &recordingEmbedder{}
	cache := NewCache(inner)

	ctx := context.Background()

	first, err := cache.Embed(ctx, []string{"alpha", "beta", "alpha"})
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, first[0], first[2])

	second, err := cache.Embed(ctx, []string{"beta", "gamma"})
	require.NoError(t, err)
	require.Len(t, second, 2)

	// First batch deduplicates, second one only encodes the new text.
	require.Len(t, inner.batches, 2)
	assert.Equal(t, []string{"alpha", "beta"}, inner.batches[0])
	assert.Equal(t, []string{"gamma"}, inner.batches[1])
	assert.Equal(t, 3, cache.Len())
}

func TestCacheEmptyInput(t *testing.T) {
	cache := NewCache(&recordingEmbedder{})

	_, err := cache.Embed(context.Background(), nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestCachePropagatesProviderErrors(t *testing.T) {
	inner := &recordingEmbedder{err: errors.New("quota exceeded")}
	cache := NewCache(inner)

	_, err := cache.Embed(context.Background(), []string{"alpha"})
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheClose(t *testing.T) {
	inner := &recordingEmbedder{}
	cache := NewCache(inner)

	require.NoError(t, cache.Close())
	assert.True(t, inner.closed)
}
