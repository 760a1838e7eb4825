package entity

import (
	"context"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/utils/logging"
)

// Delete removes an entity. The interaction log lives in the same
// record and is destroyed with it.
func (u *UseCase) Delete(ctx context.Context, id model.EntityID) error {
	if err := u.repo.DeleteEntity(ctx, id); err != nil {
		return err
	}

	logging.From(ctx).Info("entity deleted", "entity_id", id)
	return nil
}
