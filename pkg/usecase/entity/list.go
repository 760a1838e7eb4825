package entity

import (
	"context"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
)

// ListOptions contains options for listing entities
type ListOptions struct {
	Offset int
	Limit  int
}

// List retrieves entities ordered by creation time, newest first
func (u *UseCase) List(ctx context.Context, opts ListOptions) ([]*model.Entity, error) {
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	return u.repo.ListEntities(ctx, opts.Offset, opts.Limit)
}
