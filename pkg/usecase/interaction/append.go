package interaction

import (
	"context"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// AppendInput contains the fields for one new interaction
type AppendInput struct {
	EntityID model.EntityID
	Input    string
	Output   string
	UserID   string

	// Embedding skips the embedding call when set. A caller retrying
	// after a persistence failure passes the vector from the failed
	// attempt so the embedding is not paid for twice.
	Embedding []float64
}

// Append embeds the input text, grows all four log sequences by one
// element and persists them as a single write. Nothing is observable
// on the entity if the write fails.
func (u *UseCase) Append(ctx context.Context, in AppendInput) (*model.Interaction, error) {
	if in.Input == "" {
		return nil, goerr.Wrap(model.ErrEmptyInput, "interaction input is empty",
			goerr.V("entity_id", in.EntityID))
	}

	vec := in.Embedding
	if vec == nil {
		v, err := u.embedder.Embed(ctx, in.Input)
		if err != nil {
			return nil, err
		}
		vec = v
	} else {
		v, err := model.EnsureVector(vec)
		if err != nil {
			return nil, err
		}
		vec = v
	}

	log, err := u.repo.GetInteractionLog(ctx, in.EntityID)
	if err != nil {
		return nil, err
	}
	warnIfMisaligned(ctx, in.EntityID, log)

	it := model.Interaction{
		Input:     in.Input,
		Output:    in.Output,
		Embedding: vec,
		Meta: &model.InteractionMeta{
			Input:     in.Input,
			Output:    in.Output,
			Timestamp: time.Now(),
			UserID:    in.UserID,
		},
	}
	log.Append(it)

	if err := u.repo.UpdateInteractionLog(ctx, in.EntityID, log); err != nil {
		return nil, goerr.Wrap(err, "failed to persist interaction",
			goerr.V("entity_id", in.EntityID))
	}

	return &it, nil
}
