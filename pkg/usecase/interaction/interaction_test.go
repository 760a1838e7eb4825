package interaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/adapter"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/repository"
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/usecase/interaction"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func setup(t *testing.T) (*repository.Memory, *adapter.MockEmbedder, *interaction.UseCase, *model.Entity) {
	t.Helper()

	repo := repository.NewMemory()
	embedder := adapter.NewMockEmbedder(8)
	uc := interaction.New(repo, embedder)

	entity := &model.Entity{
		ID:        model.NewEntityID(),
		Name:      "Test Customer",
		Kind:      model.KindCustomer,
		CreatedAt: time.Now(),
	}
	gt.NoError(t, repo.CreateEntity(context.Background(), entity))

	return repo, embedder, uc, entity
}

func TestAppendGrowsAllSequences(t *testing.T) {
	repo, _, uc, entity := setup(t)
	ctx := context.Background()

	it, err := uc.Append(ctx, interaction.AppendInput{
		EntityID: entity.ID,
		Input:    "What products do you sell?",
		Output:   "RDP, HPMC, SBR",
		UserID:   "user-1",
	})
	gt.NoError(t, err)
	gt.V(t, it).NotNil()
	gt.A(t, it.Embedding).Length(8)

	log, err := repo.GetInteractionLog(ctx, entity.ID)
	gt.NoError(t, err)
	gt.Equal(t, log.AlignedLen(), 1)
	if !log.Aligned() {
		t.Error("log must be aligned after append")
	}
	gt.Equal(t, log.Inputs[0], "What products do you sell?")
	gt.Equal(t, log.Outputs[0], "RDP, HPMC, SBR")
	gt.Equal(t, log.Metadata[0].Input, "What products do you sell?")
	gt.Equal(t, log.Metadata[0].Output, "RDP, HPMC, SBR")
	gt.Equal(t, log.Metadata[0].UserID, "user-1")
	if log.Metadata[0].Timestamp.IsZero() {
		t.Error("metadata timestamp must be set")
	}
}

func TestAppendAlignmentInvariant(t *testing.T) {
	repo, _, uc, entity := setup(t)
	ctx := context.Background()

	for i, input := range []string{"q1", "q2", "q3", "q4"} {
		_, err := uc.Append(ctx, interaction.AppendInput{
			EntityID: entity.ID,
			Input:    input,
			Output:   "answer",
			UserID:   "user-1",
		})
		gt.NoError(t, err)

		log, err := repo.GetInteractionLog(ctx, entity.ID)
		gt.NoError(t, err)
		if !log.Aligned() {
			t.Fatalf("log misaligned after append %d", i)
		}
		gt.Equal(t, log.AlignedLen(), i+1)
	}
}

func TestAppendEmptyInput(t *testing.T) {
	_, _, uc, entity := setup(t)

	_, err := uc.Append(context.Background(), interaction.AppendInput{
		EntityID: entity.ID,
		Input:    "",
		Output:   "answer",
	})
	gt.Error(t, err)
	if !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAppendEntityNotFound(t *testing.T) {
	_, _, uc, _ := setup(t)

	_, err := uc.Append(context.Background(), interaction.AppendInput{
		EntityID: model.EntityID("nope"),
		Input:    "question",
	})
	gt.Error(t, err)
	if !errors.Is(err, model.ErrEntityNotFound) {
		t.Errorf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestAppendWithPrecomputedEmbedding(t *testing.T) {
	repo, embedder, uc, entity := setup(t)
	ctx := context.Background()

	it, err := uc.Append(ctx, interaction.AppendInput{
		EntityID:  entity.ID,
		Input:     "question",
		Output:    "answer",
		UserID:    "user-1",
		Embedding: []float64{1, 0, 0},
	})
	gt.NoError(t, err)
	gt.Equal(t, it.Embedding, []float64{1, 0, 0})
	gt.Equal(t, embedder.Calls, 0)

	log, err := repo.GetInteractionLog(ctx, entity.ID)
	gt.NoError(t, err)
	gt.Equal(t, log.Embeddings[0], []float64{1, 0, 0})
}

type failingRepo struct {
	repository.Repository
}

func (r *failingRepo) UpdateInteractionLog(ctx context.Context, id model.EntityID, log *model.InteractionLog) error {
	return goerr.New("write rejected")
}

func TestAppendPersistenceFailureLeavesLogUntouched(t *testing.T) {
	repo, _, _, entity := setup(t)
	ctx := context.Background()

	uc := interaction.New(&failingRepo{Repository: repo}, adapter.NewMockEmbedder(8))

	_, err := uc.Append(ctx, interaction.AppendInput{
		EntityID: entity.ID,
		Input:    "question",
		Output:   "answer",
	})
	gt.Error(t, err)

	log, err := repo.GetInteractionLog(ctx, entity.ID)
	gt.NoError(t, err)
	gt.Equal(t, log.AlignedLen(), 0)
}

func TestDeleteAtRemovesElementInOrder(t *testing.T) {
	repo, _, uc, entity := setup(t)
	ctx := context.Background()

	for _, input := range []string{"q1", "q2", "q3"} {
		_, err := uc.Append(ctx, interaction.AppendInput{
			EntityID: entity.ID,
			Input:    input,
			Output:   "a-" + input,
			UserID:   "user-1",
		})
		gt.NoError(t, err)
	}

	ok, err := uc.DeleteAt(ctx, entity.ID, 1)
	gt.NoError(t, err)
	gt.Equal(t, ok, true)

	log, err := repo.GetInteractionLog(ctx, entity.ID)
	gt.NoError(t, err)
	gt.Equal(t, log.AlignedLen(), 2)
	if !log.Aligned() {
		t.Error("log must be aligned after delete")
	}
	gt.Equal(t, log.Inputs, []string{"q1", "q3"})
	gt.Equal(t, log.Outputs, []string{"a-q1", "a-q3"})
	gt.Equal(t, log.Metadata[1].Input, "q3")
}

func TestDeleteAtBounds(t *testing.T) {
	_, _, uc, entity := setup(t)
	ctx := context.Background()

	// Empty log: every index is out of range.
	for _, index := range []int{-1, 0, 1} {
		_, err := uc.DeleteAt(ctx, entity.ID, index)
		gt.Error(t, err)
		if !errors.Is(err, model.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange for index %d, got %v", index, err)
		}
	}

	_, err := uc.Append(ctx, interaction.AppendInput{
		EntityID: entity.ID,
		Input:    "q1",
		Output:   "a1",
	})
	gt.NoError(t, err)

	for _, index := range []int{-1, 1, 2} {
		_, err := uc.DeleteAt(ctx, entity.ID, index)
		gt.Error(t, err)
		if !errors.Is(err, model.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange for index %d, got %v", index, err)
		}
	}
}

func TestDeleteAtMisalignedLogUsesAlignedLength(t *testing.T) {
	repo, _, uc, entity := setup(t)
	ctx := context.Background()

	// Three inputs/outputs/embeddings but only two metadata records:
	// the aligned length is 2, so index 2 exists only partially and
	// must be rejected.
	log, err := repo.GetInteractionLog(ctx, entity.ID)
	gt.NoError(t, err)
	log.Inputs = []string{"q1", "q2", "q3"}
	log.Outputs = []string{"a1", "a2", "a3"}
	log.Embeddings = [][]float64{{1, 0}, {0, 1}, {1, 1}}
	log.Metadata = []*model.InteractionMeta{
		{Input: "q1", Output: "a1", Timestamp: time.Now(), UserID: "u1"},
		{Input: "q2", Output: "a2", Timestamp: time.Now(), UserID: "u1"},
	}
	gt.NoError(t, repo.UpdateInteractionLog(ctx, entity.ID, log))

	_, err = uc.DeleteAt(ctx, entity.ID, 2)
	gt.Error(t, err)
	if !errors.Is(err, model.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}

	ok, err := uc.DeleteAt(ctx, entity.ID, 1)
	gt.NoError(t, err)
	gt.Equal(t, ok, true)

	stored, err := repo.GetInteractionLog(ctx, entity.ID)
	gt.NoError(t, err)
	gt.Equal(t, stored.Inputs, []string{"q1", "q3"})
	gt.Equal(t, stored.Metadata[0].Input, "q1")
}

func TestDeleteAtEntityNotFound(t *testing.T) {
	_, _, uc, _ := setup(t)

	_, err := uc.DeleteAt(context.Background(), model.EntityID("nope"), 0)
	gt.Error(t, err)
	if !errors.Is(err, model.ErrEntityNotFound) {
		t.Errorf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestReadAll(t *testing.T) {
	_, _, uc, entity := setup(t)
	ctx := context.Background()

	_, err := uc.Append(ctx, interaction.AppendInput{
		EntityID: entity.ID,
		Input:    "q1",
		Output:   "a1",
		UserID:   "user-1",
	})
	gt.NoError(t, err)

	log, err := uc.ReadAll(ctx, entity.ID)
	gt.NoError(t, err)
	gt.Equal(t, log.AlignedLen(), 1)
	gt.Equal(t, log.Inputs[0], "q1")

	_, err = uc.ReadAll(ctx, model.EntityID("nope"))
	gt.Error(t, err)
}
