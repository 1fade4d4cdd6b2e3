// Package embedding provides text embedding for semantic match features via
// a local ONNX model or the Gemini API.
package embedding

import (
	"context"
	"errors"
	"math"
)

// ErrEmptyInput is returned when an embed call receives no texts.
var ErrEmptyInput = errors.New("embedding: no input texts")

// Embedder produces vector embeddings for natural-language texts. Providers
// must support batch encoding; callers amortize model overhead by encoding
// whole columns at once.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Close() error
}

// Cosine returns the cosine similarity of two vectors in [-1, 1]. Zero-length
// or zero-norm vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
