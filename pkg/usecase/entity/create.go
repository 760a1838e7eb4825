package entity

import (
	"context"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// CreateInput contains the fields for a new entity
type CreateInput struct {
	Name string
	Kind model.Kind
}

// Create persists a new entity with an empty interaction log. The
// repository assigns the sequential display ID.
func (u *UseCase) Create(ctx context.Context, in CreateInput) (*model.Entity, error) {
	if in.Name == "" {
		return nil, goerr.New("entity name is required")
	}
	if err := in.Kind.Validate(); err != nil {
		return nil, err
	}

	entity := &model.Entity{
		ID:        model.NewEntityID(),
		Name:      in.Name,
		Kind:      in.Kind,
		CreatedAt: time.Now(),
	}

	if err := u.repo.CreateEntity(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}
