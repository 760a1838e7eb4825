package interaction

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// snapshot is the JSON document written to blob storage. Field names
// mirror the persisted schema.
type snapshot struct {
	EntityID  model.EntityID           `json:"entity_id"`
	DisplayID string                   `json:"display_id"`
	Name      string                   `json:"name"`
	Kind      model.Kind               `json:"kind"`
	TakenAt   time.Time                `json:"taken_at"`
	Inputs    []string                 `json:"input_conversation"`
	Outputs   []string                 `json:"output_conversation"`
	Embedding [][]float64              `json:"interaction_embeddings"`
	Metadata  []*model.InteractionMeta `json:"interaction_metadata"`
}

// Export writes the entity's interaction log as a JSON object to blob
// storage under the given key.
func (u *UseCase) Export(ctx context.Context, id model.EntityID, key string) error {
	if u.storage == nil {
		return goerr.New("snapshot storage is not configured")
	}
	if key == "" {
		return goerr.New("snapshot key is required")
	}

	entity, err := u.repo.GetEntity(ctx, id)
	if err != nil {
		return err
	}

	log, err := u.ReadAll(ctx, id)
	if err != nil {
		return err
	}

	w, err := u.storage.Put(ctx, key)
	if err != nil {
		return goerr.Wrap(err, "failed to open snapshot writer", goerr.V("key", key))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot{
		EntityID:  entity.ID,
		DisplayID: entity.DisplayID,
		Name:      entity.Name,
		Kind:      entity.Kind,
		TakenAt:   time.Now(),
		Inputs:    log.Inputs,
		Outputs:   log.Outputs,
		Embedding: log.Embeddings,
		Metadata:  log.Metadata,
	}); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to encode snapshot", goerr.V("key", key))
	}

	// GCS commits the object on Close, so a Close error means the
	// snapshot was not written.
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize snapshot", goerr.V("key", key))
	}

	logging.From(ctx).Info("interaction log exported",
		"entity_id", id, "key", key, "interactions", log.AlignedLen())

	return nil
}

// Import replaces the entity's interaction log with the contents of a
// snapshot previously written by Export. The target entity keeps its
// own identity fields; only the four log sequences are restored.
func (u *UseCase) Import(ctx context.Context, id model.EntityID, key string) (*model.InteractionLog, error) {
	if u.storage == nil {
		return nil, goerr.New("snapshot storage is not configured")
	}
	if key == "" {
		return nil, goerr.New("snapshot key is required")
	}

	if _, err := u.repo.GetEntity(ctx, id); err != nil {
		return nil, err
	}

	rc, err := u.storage.Get(ctx, key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open snapshot reader", goerr.V("key", key))
	}
	defer rc.Close()

	var snap snapshot
	if err := json.NewDecoder(rc).Decode(&snap); err != nil {
		return nil, goerr.Wrap(err, "failed to decode snapshot", goerr.V("key", key))
	}

	log := &model.InteractionLog{
		Inputs:     snap.Inputs,
		Outputs:    snap.Outputs,
		Embeddings: snap.Embedding,
		Metadata:   snap.Metadata,
	}
	if log.Inputs == nil {
		log.Inputs = []string{}
	}
	if log.Outputs == nil {
		log.Outputs = []string{}
	}
	if log.Embeddings == nil {
		log.Embeddings = [][]float64{}
	}
	if log.Metadata == nil {
		log.Metadata = []*model.InteractionMeta{}
	}
	warnIfMisaligned(ctx, id, log)

	if err := u.repo.UpdateInteractionLog(ctx, id, log); err != nil {
		return nil, goerr.Wrap(err, "failed to restore interaction log",
			goerr.V("entity_id", id), goerr.V("key", key))
	}

	logging.From(ctx).Info("interaction log restored",
		"entity_id", id, "key", key, "interactions", log.AlignedLen())

	return log, nil
}
