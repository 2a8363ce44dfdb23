package response

import (
	"testing"
	"time"

	"pombal/internal/domain/entities"
)

func TestFromFormula(t *testing.T) {
	now := time.Now().UTC()
	f := entities.Formula{
		ID:            "f-1",
		OwnerID:       "owner-1",
		Father:        entities.Parent{ID: "p-1", Name: "Rocky"},
		Mother:        entities.Parent{Name: "Luna"},
		YearOfFormula: "2024",
		Eggs: []entities.Egg{
			{ID: "egg-1", DeliveredAt: now, TransformedToPigeonAt: &now, PigeonID: "p-9"},
			{ID: "egg-2", DeliveredAt: now},
		},
		Children: []string{"p-9"},
		Status:   entities.FormulaStatusHasOnePigeon,
		History: []entities.HistoryEntry{
			{Action: entities.ActionFormulaInitiated, Description: "Formula has been created", Date: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromFormula(f)
	if res.ID != "f-1" || res.Status != "HAS_ONE_PIGEON" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Father.ID != "p-1" || res.Father.Name != "Rocky" || res.Mother.Name != "Luna" {
		t.Fatalf("unexpected parents: %+v", res)
	}
	if len(res.Eggs) != 2 || res.Eggs[0].PigeonID != "p-9" || res.Eggs[1].TransformedToPigeonAt != nil {
		t.Fatalf("unexpected eggs: %+v", res.Eggs)
	}
	if len(res.Children) != 1 || res.Children[0] != "p-9" {
		t.Fatalf("unexpected children: %+v", res.Children)
	}
	if len(res.History) != 1 || res.History[0].Action != "FORMULA_INITIATED" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
}

func TestFromFormulaNilSlices(t *testing.T) {
	res := FromFormula(entities.Formula{ID: "f-1"})

	// JSON should render [] rather than null.
	if res.Eggs == nil || res.Children == nil || res.History == nil {
		t.Fatalf("expected empty slices, got %+v", res)
	}
}

func TestFromFormulas(t *testing.T) {
	out := FromFormulas([]entities.Formula{{ID: "f-1"}, {ID: "f-2"}})
	if len(out) != 2 || out[0].ID != "f-1" || out[1].ID != "f-2" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if FromFormulas(nil) == nil {
		t.Fatalf("expected empty slice for nil input")
	}
}
