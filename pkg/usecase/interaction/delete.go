package interaction

import (
	"context"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// DeleteAt removes position index from all four sequences and persists
// the result. The bounds check runs against the aligned length, so an
// index that only exists in some of the sequences is rejected.
func (u *UseCase) DeleteAt(ctx context.Context, id model.EntityID, index int) (bool, error) {
	log, err := u.repo.GetInteractionLog(ctx, id)
	if err != nil {
		return false, err
	}
	warnIfMisaligned(ctx, id, log)

	n := log.AlignedLen()
	if index < 0 || index >= n {
		return false, goerr.Wrap(model.ErrIndexOutOfRange, "cannot delete interaction",
			goerr.V("entity_id", id), goerr.V("index", index), goerr.V("length", n))
	}

	log.RemoveAt(index)

	if err := u.repo.UpdateInteractionLog(ctx, id, log); err != nil {
		return false, goerr.Wrap(err, "failed to persist interaction removal",
			goerr.V("entity_id", id), goerr.V("index", index))
	}

	return true, nil
}
