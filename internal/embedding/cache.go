package embedding

import "context"

// Cache memoizes embeddings by exact text for the lifetime of the process.
// The pipeline is single-threaded and the cache is written only by its
// owning calculator, so no locking is needed.
type Cache struct {
	inner   Embedder
	entries map[string][]float32
}

// NewCache wraps an embedder with a process-lifetime memo.
func NewCache(inner Embedder) *Cache {
	return &Cache{inner: inner, entries: make(map[string][]float32)}
}

// Embed returns one vector per input text, encoding only the texts not seen
// before in a single batch call to the underlying provider.
func (c *Cache) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	missing := make([]string, 0)
	seen := make(map[string]bool)
	for _, t := range texts {
		if _, ok := c.entries[t]; !ok && !seen[t] {
			missing = append(missing, t)
			seen[t] = true
		}
	}

	if len(missing) > 0 {
		vectors, err := c.inner.Embed(ctx, missing)
		if err != nil {
			return nil, err
		}
		for i, t := range missing {
			if i < len(vectors) {
				c.entries[t] = vectors[i]
			}
		}
	}

	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = c.entries[t]
	}
	return out, nil
}

// Len reports the number of cached texts.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Close releases the underlying provider.
func (c *Cache) Close() error {
	return c.inner.Close()
}
