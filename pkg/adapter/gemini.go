package adapter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// Embedder converts text into a fixed-length embedding vector.
type Embedder interface {
	// Embed returns the embedding of text. Empty input is rejected
	// with model.ErrEmptyInput rather than embedded as a zero vector.
	Embed(ctx context.Context, text string) ([]float64, error)
}

// GeminiEmbedder implements Embedder using the Gemini embedding API.
type GeminiEmbedder struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	retry   retryPolicy
}

type GeminiOption func(*GeminiEmbedder)

func WithEmbeddingModel(model string) GeminiOption {
	return func(g *GeminiEmbedder) {
		g.model = model
	}
}

// WithTimeout sets the per-call deadline for embedding requests.
func WithTimeout(d time.Duration) GeminiOption {
	return func(g *GeminiEmbedder) {
		g.timeout = d
	}
}

func NewGemini(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(model.ErrMissingCredential, "gemini api key is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client")
	}

	g := &GeminiEmbedder{
		client:  client,
		model:   "gemini-embedding-001",
		timeout: 30 * time.Second,
		retry:   defaultRetryPolicy(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, goerr.Wrap(model.ErrEmptyInput, "cannot embed empty text")
	}

	var vec []float64
	err := g.retry.Do(ctx, func(ctx context.Context) (bool, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		resp, err := g.client.Models.EmbedContent(callCtx, g.model, genai.Text(text), &genai.EmbedContentConfig{})
		if err != nil {
			return classifyRemoteError(err)
		}
		if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
			return false, goerr.Wrap(model.ErrMalformedResponse, "embedding response has no vectors")
		}

		v, err := model.EnsureVector(resp.Embeddings[0].Values)
		if err != nil {
			return false, err
		}
		vec = v
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return vec, nil
}

// classifyRemoteError maps a raw transport error to the typed error
// taxonomy and reports whether the failure is transient. Credential
// and malformed-payload failures are never transient; only timeouts,
// rate limits and 5xx responses are retried.
func classifyRemoteError(err error) (bool, error) {
	if errors.Is(err, context.DeadlineExceeded) {
		return true, goerr.Wrap(model.ErrTimeout, "embedding request timed out", goerr.V("cause", err.Error()))
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		transient := apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
		return transient, goerr.Wrap(model.ErrRemoteService, "embedding service returned non-success status",
			goerr.V("status", apiErr.Code), goerr.V("body", apiErr.Message))
	}

	// Network-level failure without an HTTP status: worth retrying.
	return true, goerr.Wrap(model.ErrRemoteService, "embedding request failed", goerr.V("cause", err.Error()))
}
