package recall

import (
	"context"
	"sort"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/adapter"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/repository"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// UseCase ranks an entity's interaction history against a query by
// embedding similarity
type UseCase struct {
	repo     repository.Repository
	embedder adapter.Embedder
}

// New creates a new recall UseCase instance
func New(repo repository.Repository, embedder adapter.Embedder) *UseCase {
	return &UseCase{
		repo:     repo,
		embedder: embedder,
	}
}

// TopK embeds query and returns at most k interactions of the entity,
// ordered by descending cosine similarity. Ties keep the original log
// order, so earlier interactions win. An empty log yields an empty
// result, not an error.
func (u *UseCase) TopK(ctx context.Context, id model.EntityID, query string, k int) ([]*model.ScoredInteraction, error) {
	if k <= 0 {
		return nil, goerr.New("k must be positive", goerr.V("k", k))
	}

	queryVec, err := u.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	log, err := u.repo.GetInteractionLog(ctx, id)
	if err != nil {
		return nil, err
	}

	// Embeddings and metadata can drift out of alignment after a
	// partial write; rank only the prefix both sequences cover.
	n := min(len(log.Embeddings), len(log.Metadata))
	if !log.Aligned() {
		logging.From(ctx).Warn("interaction log sequences are misaligned; ranking aligned prefix",
			"entity_id", id, "effective_length", n)
	}
	if n == 0 {
		return []*model.ScoredInteraction{}, nil
	}

	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		row := log.Embeddings[i]
		if len(row) != len(queryVec) {
			return nil, goerr.Wrap(model.ErrDimensionMismatch, "stored embedding does not match query dimension",
				goerr.V("entity_id", id), goerr.V("row", i),
				goerr.V("row_dim", len(row)), goerr.V("query_dim", len(queryVec)))
		}
		scores[i] = cosineSimilarity(row, queryVec)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > n {
		k = n
	}

	results := make([]*model.ScoredInteraction, 0, k)
	for _, i := range order[:k] {
		var meta model.InteractionMeta
		if log.Metadata[i] != nil {
			meta = *log.Metadata[i]
		}
		results = append(results, &model.ScoredInteraction{
			InteractionMeta: meta,
			Similarity:      scores[i],
		})
	}

	return results, nil
}
