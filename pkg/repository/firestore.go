package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionEntities = "entities"
	collectionCounters = "display_id_counters"
)

// Firestore implements Repository using Firestore. Each entity is one
// document carrying the four aligned log arrays as named fields, so a
// field update over all four is a single atomic write.
type Firestore struct {
	client *firestore.Client
}

// New creates a new Firestore repository
func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	return &Firestore{client: client}, nil
}

// Close releases the underlying client
func (r *Firestore) Close() error {
	return r.client.Close()
}

type entityDoc struct {
	DisplayID string    `firestore:"display_id"`
	Name      string    `firestore:"name"`
	Kind      string    `firestore:"kind"`
	CreatedAt time.Time `firestore:"created_at"`

	Inputs   []string                 `firestore:"input_conversation"`
	Outputs  []string                 `firestore:"output_conversation"`
	Metadata []*model.InteractionMeta `firestore:"interaction_metadata"`

	// Decoded as any: rows written by this code are {values: [...]}
	// maps (Firestore rejects nested arrays), but legacy rows may be
	// JSON strings or other shapes and are normalized on read.
	Embeddings []any `firestore:"interaction_embeddings"`
}

// embeddingDoc wraps one vector because Firestore does not allow an
// array directly inside an array.
type embeddingDoc struct {
	Values []float64 `firestore:"values"`
}

type counterDoc struct {
	Next int `firestore:"next"`
}

func (r *Firestore) CreateEntity(ctx context.Context, entity *model.Entity) error {
	if err := entity.Kind.Validate(); err != nil {
		return err
	}
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = time.Now()
	}

	year := entity.CreatedAt.Year()
	counterRef := r.client.Collection(collectionCounters).Doc(model.CounterKey(entity.Kind, year))
	entityRef := r.client.Collection(collectionEntities).Doc(string(entity.ID))

	var displayID string
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		seq := 1
		snap, err := tx.Get(counterRef)
		if err == nil {
			var c counterDoc
			if err := snap.DataTo(&c); err != nil {
				return goerr.Wrap(err, "failed to decode display ID counter")
			}
			seq = c.Next
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Set(counterRef, counterDoc{Next: seq + 1}); err != nil {
			return err
		}

		displayID = model.FormatDisplayID(entity.Kind, year, seq)
		return tx.Set(entityRef, entityDoc{
			DisplayID:  displayID,
			Name:       entity.Name,
			Kind:       string(entity.Kind),
			CreatedAt:  entity.CreatedAt,
			Inputs:     []string{},
			Outputs:    []string{},
			Metadata:   []*model.InteractionMeta{},
			Embeddings: []any{},
		})
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create entity", goerr.V("entity_id", entity.ID))
	}

	entity.DisplayID = displayID
	return nil
}

func (r *Firestore) GetEntity(ctx context.Context, id model.EntityID) (*model.Entity, error) {
	doc, err := r.getEntityDoc(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.Entity{
		ID:        id,
		DisplayID: doc.DisplayID,
		Name:      doc.Name,
		Kind:      model.Kind(doc.Kind),
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *Firestore) ListEntities(ctx context.Context, offset, limit int) ([]*model.Entity, error) {
	query := r.client.Collection(collectionEntities).
		OrderBy("created_at", firestore.Desc).
		Offset(offset).
		Limit(limit)

	var entities []*model.Entity
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate entities")
		}

		var doc entityDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode entity", goerr.V("entity_id", snap.Ref.ID))
		}
		entities = append(entities, &model.Entity{
			ID:        model.EntityID(snap.Ref.ID),
			DisplayID: doc.DisplayID,
			Name:      doc.Name,
			Kind:      model.Kind(doc.Kind),
			CreatedAt: doc.CreatedAt,
		})
	}

	return entities, nil
}

func (r *Firestore) DeleteEntity(ctx context.Context, id model.EntityID) error {
	ref := r.client.Collection(collectionEntities).Doc(string(id))
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrEntityNotFound, "cannot delete missing entity", goerr.V("entity_id", id))
		}
		return goerr.Wrap(err, "failed to delete entity", goerr.V("entity_id", id))
	}
	return nil
}

func (r *Firestore) GetInteractionLog(ctx context.Context, id model.EntityID) (*model.InteractionLog, error) {
	doc, err := r.getEntityDoc(ctx, id)
	if err != nil {
		return nil, err
	}

	embeddings, err := decodeEmbeddings(doc.Embeddings)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode stored embeddings", goerr.V("entity_id", id))
	}

	log := &model.InteractionLog{
		Inputs:     doc.Inputs,
		Outputs:    doc.Outputs,
		Embeddings: embeddings,
		Metadata:   doc.Metadata,
	}
	if log.Inputs == nil {
		log.Inputs = []string{}
	}
	if log.Outputs == nil {
		log.Outputs = []string{}
	}
	if log.Metadata == nil {
		log.Metadata = []*model.InteractionMeta{}
	}

	return log, nil
}

func (r *Firestore) UpdateInteractionLog(ctx context.Context, id model.EntityID, log *model.InteractionLog) error {
	ref := r.client.Collection(collectionEntities).Doc(string(id))

	// Read and update inside one transaction so the pre-write length is
	// known; the update itself covers all four fields in one write and
	// stays all-or-nothing from the caller's perspective.
	var before int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		var doc entityDoc
		if err := snap.DataTo(&doc); err != nil {
			return goerr.Wrap(err, "failed to decode entity")
		}
		before = min(len(doc.Inputs), len(doc.Outputs), len(doc.Embeddings), len(doc.Metadata))

		return tx.Update(ref, []firestore.Update{
			{Path: "input_conversation", Value: nonNilStrings(log.Inputs)},
			{Path: "output_conversation", Value: nonNilStrings(log.Outputs)},
			{Path: "interaction_embeddings", Value: encodeEmbeddings(log.Embeddings)},
			{Path: "interaction_metadata", Value: nonNilMetadata(log.Metadata)},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrEntityNotFound, "cannot update log of missing entity", goerr.V("entity_id", id))
		}
		return goerr.Wrap(err, "failed to update interaction log", goerr.V("entity_id", id))
	}

	warnOnLengthJump(ctx, id, before, log.AlignedLen())
	return nil
}

func (r *Firestore) getEntityDoc(ctx context.Context, id model.EntityID) (*entityDoc, error) {
	snap, err := r.client.Collection(collectionEntities).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrEntityNotFound, "entity does not exist", goerr.V("entity_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get entity", goerr.V("entity_id", id))
	}

	var doc entityDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode entity", goerr.V("entity_id", id))
	}
	return &doc, nil
}

func encodeEmbeddings(rows [][]float64) []embeddingDoc {
	out := make([]embeddingDoc, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			row = []float64{}
		}
		out = append(out, embeddingDoc{Values: row})
	}
	return out
}

func decodeEmbeddings(raw []any) ([][]float64, error) {
	rows := make([][]float64, 0, len(raw))
	for i, item := range raw {
		if m, ok := item.(map[string]any); ok {
			if v, ok := m["values"]; ok {
				item = v
			}
		}
		vec, err := model.EnsureVector(item)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid embedding row", goerr.V("row", i))
		}
		rows = append(rows, vec)
	}
	return rows, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilMetadata(m []*model.InteractionMeta) []*model.InteractionMeta {
	if m == nil {
		return []*model.InteractionMeta{}
	}
	return m
}
