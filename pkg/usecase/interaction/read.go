package interaction

import (
	"context"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
)

// ReadAll returns the four sequences as stored. Uneven lengths are
// reported through the logger but not repaired; callers must work
// with AlignedLen.
func (u *UseCase) ReadAll(ctx context.Context, id model.EntityID) (*model.InteractionLog, error) {
	log, err := u.repo.GetInteractionLog(ctx, id)
	if err != nil {
		return nil, err
	}
	warnIfMisaligned(ctx, id, log)

	return log, nil
}
