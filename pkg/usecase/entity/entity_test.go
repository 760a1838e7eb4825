package entity_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/repository"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/entity"
	"github.com/m-mizutani/gt"
)

func TestCreateAssignsIDs(t *testing.T) {
	repo := repository.NewMemory()
	uc := entity.New(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, entity.CreateInput{
		Name: "Acme Chemicals",
		Kind: model.KindCustomer,
	})
	gt.NoError(t, err)
	gt.V(t, created).NotNil()

	if created.ID == "" {
		t.Error("entity ID must be assigned")
	}
	if !strings.Contains(created.DisplayID, "-CRM-") {
		t.Errorf("display ID must carry the kind tag: %s", created.DisplayID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at must be set")
	}
}

func TestCreateValidation(t *testing.T) {
	uc := entity.New(repository.NewMemory())
	ctx := context.Background()

	_, err := uc.Create(ctx, entity.CreateInput{Name: "", Kind: model.KindCustomer})
	gt.Error(t, err)

	_, err = uc.Create(ctx, entity.CreateInput{Name: "x", Kind: model.Kind("invoice")})
	gt.Error(t, err)
}

func TestGetAndList(t *testing.T) {
	repo := repository.NewMemory()
	uc := entity.New(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, entity.CreateInput{Name: "one", Kind: model.KindProduct})
	gt.NoError(t, err)

	got, err := uc.Get(ctx, created.ID)
	gt.NoError(t, err)
	gt.Equal(t, got.Name, "one")

	listed, err := uc.List(ctx, entity.ListOptions{})
	gt.NoError(t, err)
	gt.A(t, listed).Length(1)
}

func TestDeleteDestroysLog(t *testing.T) {
	repo := repository.NewMemory()
	uc := entity.New(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, entity.CreateInput{Name: "doomed", Kind: model.KindCustomer})
	gt.NoError(t, err)

	log, err := repo.GetInteractionLog(ctx, created.ID)
	gt.NoError(t, err)
	gt.Equal(t, log.AlignedLen(), 0)

	gt.NoError(t, uc.Delete(ctx, created.ID))

	_, err = repo.GetInteractionLog(ctx, created.ID)
	gt.Error(t, err)
	if !errors.Is(err, model.ErrEntityNotFound) {
		t.Errorf("expected ErrEntityNotFound, got %v", err)
	}
}
