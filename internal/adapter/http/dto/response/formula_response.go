package response

import (
	"time"

	"pombal/internal/domain/entities"
)

type ParentResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type EggResponse struct {
	ID                    string     `json:"id"`
	DeliveredAt           time.Time  `json:"delivered_at"`
	TransformedToPigeonAt *time.Time `json:"transformed_to_pigeon_at,omitempty"`
	PigeonID              string     `json:"pigeon_id,omitempty"`
}

type HistoryEntryResponse struct {
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type FormulaResponse struct {
	ID            string                 `json:"id"`
	Father        ParentResponse         `json:"father"`
	Mother        ParentResponse         `json:"mother"`
	CaseNumber    string                 `json:"case_number,omitempty"`
	YearOfFormula string                 `json:"year_of_formula"`
	Eggs          []EggResponse          `json:"eggs"`
	Children      []string               `json:"children"`
	Status        string                 `json:"status"`
	History       []HistoryEntryResponse `json:"history"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromFormula(f entities.Formula) FormulaResponse {
	eggs := make([]EggResponse, 0, len(f.Eggs))
	for _, e := range f.Eggs {
		eggs = append(eggs, EggResponse{
			ID:                    e.ID,
			DeliveredAt:           e.DeliveredAt,
			TransformedToPigeonAt: e.TransformedToPigeonAt,
			PigeonID:              e.PigeonID,
		})
	}

	history := make([]HistoryEntryResponse, 0, len(f.History))
	for _, h := range f.History {
		history = append(history, HistoryEntryResponse{
			Action:      string(h.Action),
			Description: h.Description,
			Date:        h.Date,
		})
	}

	children := f.Children
	if children == nil {
		children = []string{}
	}

	return FormulaResponse{
		ID:            f.ID,
		Father:        ParentResponse{ID: f.Father.ID, Name: f.Father.Name},
		Mother:        ParentResponse{ID: f.Mother.ID, Name: f.Mother.Name},
		CaseNumber:    f.CaseNumber,
		YearOfFormula: f.YearOfFormula,
		Eggs:          eggs,
		Children:      children,
		Status:        string(f.Status),
		History:       history,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func FromFormulas(formulas []entities.Formula) []FormulaResponse {
	out := make([]FormulaResponse, 0, len(formulas))
	for _, f := range formulas {
		out = append(out, FromFormula(f))
	}
	return out
}
