package embedding

import (
	"context"
	"fmt"
	"path/filepath"

	fastembed "github.com/anush008/fastembed-go"
)

// DefaultModel is the sentence-transformer the match features were tuned
// against.
const DefaultModel = "sentence-transformers/all-MiniLM-L6-v2"

const embedBatchSize = 256

// fastEmbedModels maps friendly model names to fastembed constants.
var fastEmbedModels = map[string]fastembed.EmbeddingModel{
	"sentence-transformers/all-MiniLM-L6-v2": fastembed.AllMiniLML6V2,
	"BAAI/bge-small-en-v1.5":                 fastembed.BGESmallENV15,
	"BAAI/bge-base-en-v1.5":                  fastembed.BGEBaseENV15,
}

// FastEmbedConfig holds configuration for the local ONNX provider.
type FastEmbedConfig struct {
	// Model is the embedding model name. Defaults to DefaultModel.
	Model string
	// CacheDir is where model files are downloaded and cached.
	CacheDir string
}

// FastEmbed embeds texts with a local ONNX model, no network calls after the
// model download.
type FastEmbed struct {
	model *fastembed.FlagEmbedding
	name  string
}

// NewFastEmbed initializes the local embedding model.
func NewFastEmbed(cfg FastEmbedConfig) (*FastEmbed, error) {
	name := cfg.Model
	if name == "" {
		name = DefaultModel
	}
	model, ok := fastEmbedModels[name]
	if !ok {
		return nil, fmt.Errorf("unsupported embedding model %q", name)
	}

	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(".", "local_cache")
	}

	showProgress := false
	flagEmbed, err := fastembed.NewFlagEmbedding(&fastembed.InitOptions{
		Model:                model,
		CacheDir:             cacheDir,
		ShowDownloadProgress: &showProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing fastembed: %w", err)
	}

	return &FastEmbed{model: flagEmbed, name: name}, nil
}

// Embed encodes the texts in one batch.
func (f *FastEmbed) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	vectors, err := f.model.Embed(texts, embedBatchSize)
	if err != nil {
		return nil, fmt.Errorf("fastembed encode: %w", err)
	}
	return vectors, nil
}

// Model returns the configured model name.
func (f *FastEmbed) Model() string {
	return f.name
}

// Close releases the ONNX runtime resources.
func (f *FastEmbed) Close() error {
	if f.model != nil {
		return f.model.Destroy()
	}
	return nil
}
