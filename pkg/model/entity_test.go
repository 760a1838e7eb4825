package model_test

import (
	"testing"

	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/model"
	"github.com/m-mizutani/gt"
)

func TestFormatDisplayID(t *testing.T) {
	gt.Equal(t, model.FormatDisplayID(model.KindCustomer, 2026, 1), "LC-2026-CRM-0001")
	gt.Equal(t, model.FormatDisplayID(model.KindProduct, 2026, 42), "LC-2026-PRD-0042")
	gt.Equal(t, model.FormatDisplayID(model.KindKnowledge, 2025, 9999), "LC-2025-KB-9999")
}

func TestCounterKey(t *testing.T) {
	gt.Equal(t, model.CounterKey(model.KindSubject, 2026), "LC-2026-LOG")
}

func TestKindValidate(t *testing.T) {
	for _, k := range []model.Kind{model.KindCustomer, model.KindSubject, model.KindProduct, model.KindKnowledge} {
		gt.NoError(t, k.Validate())
	}
	gt.Error(t, model.Kind("invoice").Validate())
	gt.Error(t, model.Kind("").Validate())
}

func TestNewEntityID(t *testing.T) {
	a := model.NewEntityID()
	b := model.NewEntityID()
	if a == b {
		t.Error("entity IDs must be unique")
	}
	gt.A(t, []rune(string(a))).Length(36)
}
