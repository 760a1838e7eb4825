package entity

import (
	"context"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
)

// Get retrieves an entity by ID
func (u *UseCase) Get(ctx context.Context, id model.EntityID) (*model.Entity, error) {
	return u.repo.GetEntity(ctx, id)
}
