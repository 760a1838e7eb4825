package repository

import (
	"context"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
)

// Repository defines the interface for entity and interaction log
// persistence. The interaction log of an entity lives in the same
// record as the entity, so deleting the entity destroys the log.
type Repository interface {
	// CreateEntity persists a new entity with an empty interaction log
	// and assigns its sequential display ID
	CreateEntity(ctx context.Context, entity *model.Entity) error

	// GetEntity retrieves an entity by ID
	GetEntity(ctx context.Context, id model.EntityID) (*model.Entity, error)

	// ListEntities retrieves entities ordered by creation time, newest first
	ListEntities(ctx context.Context, offset, limit int) ([]*model.Entity, error)

	// DeleteEntity removes an entity and its interaction log
	DeleteEntity(ctx context.Context, id model.EntityID) error

	// GetInteractionLog retrieves the four aligned sequences for an entity
	GetInteractionLog(ctx context.Context, id model.EntityID) (*model.InteractionLog, error)

	// UpdateInteractionLog replaces all four sequences in a single write
	UpdateInteractionLog(ctx context.Context, id model.EntityID, log *model.InteractionLog) error
}
