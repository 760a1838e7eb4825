package model_test

import (
	"testing"
	"time"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/gt"
)

func testInteraction(input, output string, vec []float64) model.Interaction {
	return model.Interaction{
		Input:     input,
		Output:    output,
		Embedding: vec,
		Meta: &model.InteractionMeta{
			Input:     input,
			Output:    output,
			Timestamp: time.Now(),
			UserID:    "user-1",
		},
	}
}

func TestInteractionLogAppendKeepsAlignment(t *testing.T) {
	log := &model.InteractionLog{}

	log.Append(testInteraction("q1", "a1", []float64{1, 0}))
	log.Append(testInteraction("q2", "a2", []float64{0, 1}))

	gt.Equal(t, log.AlignedLen(), 2)
	if !log.Aligned() {
		t.Error("log must stay aligned after append")
	}
	gt.Equal(t, log.Inputs, []string{"q1", "q2"})
	gt.Equal(t, log.Outputs, []string{"a1", "a2"})
}

func TestInteractionLogRemoveAt(t *testing.T) {
	log := &model.InteractionLog{}
	for _, in := range []string{"q1", "q2", "q3"} {
		log.Append(testInteraction(in, "a-"+in, []float64{1}))
	}

	log.RemoveAt(1)

	gt.Equal(t, log.AlignedLen(), 2)
	if !log.Aligned() {
		t.Error("log must stay aligned after remove")
	}
	gt.Equal(t, log.Inputs, []string{"q1", "q3"})
	gt.Equal(t, log.Outputs, []string{"a-q1", "a-q3"})
	gt.Equal(t, log.Metadata[1].Input, "q3")
}

func TestInteractionLogAlignedLenMisaligned(t *testing.T) {
	log := &model.InteractionLog{
		Inputs:     []string{"q1", "q2", "q3"},
		Outputs:    []string{"a1", "a2"},
		Embeddings: [][]float64{{1}, {2}, {3}},
		Metadata:   []*model.InteractionMeta{{}, {}, {}},
	}

	gt.Equal(t, log.AlignedLen(), 2)
	if log.Aligned() {
		t.Error("log with uneven sequences must not report aligned")
	}

	// Removing inside the aligned range must not panic on the short
	// sequence and must keep the effective length consistent.
	log.RemoveAt(0)
	gt.Equal(t, log.AlignedLen(), 1)
	gt.Equal(t, log.Inputs, []string{"q2", "q3"})
}

func TestInteractionLogClone(t *testing.T) {
	log := &model.InteractionLog{}
	log.Append(testInteraction("q1", "a1", []float64{1, 2}))

	cp := log.Clone()
	cp.Inputs[0] = "changed"
	cp.Embeddings[0][0] = 99
	cp.Metadata[0].UserID = "other"

	gt.Equal(t, log.Inputs[0], "q1")
	gt.Equal(t, log.Embeddings[0][0], 1.0)
	gt.Equal(t, log.Metadata[0].UserID, "user-1")
}
