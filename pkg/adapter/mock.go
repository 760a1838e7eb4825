package adapter

import (
	"context"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// MockEmbedder is a deterministic Embedder for tests and examples.
// Texts found in Vectors return the configured vector; any other text
// gets a character-derived vector of Dim elements.
type MockEmbedder struct {
	Dim     int
	Vectors map[string][]float64
	Calls   int
}

func NewMockEmbedder(dim int) *MockEmbedder {
	return &MockEmbedder{Dim: dim, Vectors: map[string][]float64{}}
}

func (e *MockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, goerr.Wrap(model.ErrEmptyInput, "cannot embed empty text")
	}
	e.Calls++

	if vec, ok := e.Vectors[text]; ok {
		return append([]float64{}, vec...), nil
	}

	vec := make([]float64, e.Dim)
	for i, r := range text {
		if i >= e.Dim {
			break
		}
		vec[i] = float64(r) / 1000.0
	}
	return vec, nil
}
