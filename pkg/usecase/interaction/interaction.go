package interaction

import (
	"context"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/adapter"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/repository"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/utils/logging"
)

// UseCase provides append, delete and read operations over per-entity
// interaction logs
type UseCase struct {
	repo     repository.Repository
	embedder adapter.Embedder
	storage  adapter.Storage
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithStorage enables snapshot export to blob storage
func WithStorage(st adapter.Storage) Option {
	return func(u *UseCase) {
		u.storage = st
	}
}

// New creates a new interaction UseCase instance
func New(repo repository.Repository, embedder adapter.Embedder, opts ...Option) *UseCase {
	u := &UseCase{
		repo:     repo,
		embedder: embedder,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// warnIfMisaligned reports uneven sequence lengths. Operations keep
// working with the aligned (minimum) length; the warning is the
// visible signal that a partial write happened.
func warnIfMisaligned(ctx context.Context, id model.EntityID, log *model.InteractionLog) {
	if log.Aligned() {
		return
	}
	logging.From(ctx).Warn("interaction log sequences are misaligned",
		"entity_id", id,
		"inputs", len(log.Inputs),
		"outputs", len(log.Outputs),
		"embeddings", len(log.Embeddings),
		"metadata", len(log.Metadata),
	)
}
