package scoring

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/recmetrics/fairprep/internal/embedding"
	"github.com/recmetrics/fairprep/internal/geo"
	"github.com/recmetrics/fairprep/internal/table"
)

// Policy holds the operator knobs of the calculator.
type Policy struct {
	// HQAddress is the reference address distances are measured against.
	HQAddress string
	// ExperienceMissing selects the score emitted when the job's required
	// experience is missing.
	ExperienceMissing ExperiencePolicy
	// UseCurrentSalary switches the salary-fit feature from the expected
	// to the current salary.
	UseCurrentSalary bool
}

// Deps aggregates the external collaborators of the calculator.
type Deps struct {
	Embedder embedding.Embedder
	Geocoder geo.Geocoder
	Logger   *zap.Logger
}

// Calculator computes the match features. It owns the process-lifetime
// embedding cache; the geocoder is expected to carry its own.
type Calculator struct {
	embeddings *embedding.Cache
	geocoder   geo.Geocoder
	logger     *zap.Logger
	policy     Policy
}

// NewCalculator builds a calculator around injected collaborators.
func NewCalculator(policy Policy, deps *Deps) (*Calculator, error) {
	if deps == nil || deps.Embedder == nil {
		return nil, errors.New("an embedder is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.New("a geocoder is required")
	}
	if deps.Logger == nil {
		return nil, errors.New("a logger is required")
	}
	switch policy.ExperienceMissing {
	case "":
		policy.ExperienceMissing = ExperienceMissingZero
	case ExperienceMissingZero, ExperienceMissingNoScore:
	default:
		return nil, fmt.Errorf("unknown experience policy: %s", policy.ExperienceMissing)
	}

	return &Calculator{
		embeddings: embedding.NewCache(deps.Embedder),
		geocoder:   deps.Geocoder,
		logger:     deps.Logger,
		policy:     policy,
	}, nil
}

// Close releases the embedding provider.
func (c *Calculator) Close() error {
	return c.embeddings.Close()
}

// joinPresent concatenates the present, non-blank values with sep.
func joinPresent(sep string, values ...table.Value) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}
