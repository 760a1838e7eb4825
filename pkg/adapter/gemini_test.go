package adapter_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/adapter"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/gt"
)

func TestNewGeminiWithoutKey(t *testing.T) {
	_, err := adapter.NewGemini(context.Background(), "")
	gt.Error(t, err)
	if !errors.Is(err, model.ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
}

func TestEmbedEmptyInput(t *testing.T) {
	// Client construction is local; no request is made for empty input.
	client, err := adapter.NewGemini(context.Background(), "dummy-key")
	gt.NoError(t, err)

	_, err = client.Embed(context.Background(), "")
	gt.Error(t, err)
	if !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestEmbedIntegration(t *testing.T) {
	apiKey := os.Getenv("TEST_GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("TEST_GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := adapter.NewGemini(ctx, apiKey)
	gt.NoError(t, err)

	vec, err := client.Embed(ctx, "What products do you sell?")
	gt.NoError(t, err)
	gt.A(t, vec).Longer(0)

	// Same backend, same dimensionality for any text.
	vec2, err := client.Embed(ctx, "Where are you located?")
	gt.NoError(t, err)
	gt.Equal(t, len(vec2), len(vec))
}
