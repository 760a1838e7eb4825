package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Memory is an in-process Repository for tests and examples. It keeps
// the same semantics as the Firestore implementation: whole-log
// last-write-wins updates and per-(year, kind) display ID counters
// that never go backwards.
type Memory struct {
	mu       sync.RWMutex
	records  map[model.EntityID]*memoryRecord
	counters map[string]int
}

type memoryRecord struct {
	entity model.Entity
	log    model.InteractionLog
}

// NewMemory creates an empty in-memory repository
func NewMemory() *Memory {
	return &Memory{
		records:  map[model.EntityID]*memoryRecord{},
		counters: map[string]int{},
	}
}

func (r *Memory) CreateEntity(ctx context.Context, entity *model.Entity) error {
	if err := entity.Kind.Validate(); err != nil {
		return err
	}
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[entity.ID]; ok {
		return goerr.New("entity already exists", goerr.V("entity_id", entity.ID))
	}

	year := entity.CreatedAt.Year()
	key := model.CounterKey(entity.Kind, year)
	r.counters[key]++
	entity.DisplayID = model.FormatDisplayID(entity.Kind, year, r.counters[key])

	r.records[entity.ID] = &memoryRecord{
		entity: *entity,
		log: model.InteractionLog{
			Inputs:     []string{},
			Outputs:    []string{},
			Embeddings: [][]float64{},
			Metadata:   []*model.InteractionMeta{},
		},
	}

	return nil
}

func (r *Memory) GetEntity(ctx context.Context, id model.EntityID) (*model.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, goerr.Wrap(model.ErrEntityNotFound, "entity does not exist", goerr.V("entity_id", id))
	}

	entity := rec.entity
	return &entity, nil
}

func (r *Memory) ListEntities(ctx context.Context, offset, limit int) ([]*model.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*model.Entity, 0, len(r.records))
	for _, rec := range r.records {
		entity := rec.entity
		all = append(all, &entity)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*model.Entity{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

func (r *Memory) DeleteEntity(ctx context.Context, id model.EntityID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return goerr.Wrap(model.ErrEntityNotFound, "cannot delete missing entity", goerr.V("entity_id", id))
	}

	// The interaction log lives in the same record, so it goes with
	// the entity. Display ID counters are untouched: IDs are never
	// reused.
	delete(r.records, id)
	return nil
}

func (r *Memory) GetInteractionLog(ctx context.Context, id model.EntityID) (*model.InteractionLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, goerr.Wrap(model.ErrEntityNotFound, "entity does not exist", goerr.V("entity_id", id))
	}

	return rec.log.Clone(), nil
}

func (r *Memory) UpdateInteractionLog(ctx context.Context, id model.EntityID, log *model.InteractionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return goerr.Wrap(model.ErrEntityNotFound, "cannot update log of missing entity", goerr.V("entity_id", id))
	}

	warnOnLengthJump(ctx, id, rec.log.AlignedLen(), log.AlignedLen())

	rec.log = *log.Clone()
	return nil
}

// warnOnLengthJump flags writes that move the log length by more than
// one element. A single append or delete changes the length by exactly
// one, so a bigger jump usually means another writer raced this one
// and its interactions are about to be overwritten.
func warnOnLengthJump(ctx context.Context, id model.EntityID, before, after int) {
	delta := after - before
	if delta < 0 {
		delta = -delta
	}
	if delta <= 1 {
		return
	}
	logging.From(ctx).Warn("interaction log length changed by more than one element",
		"entity_id", id, "before", before, "after", after)
}
