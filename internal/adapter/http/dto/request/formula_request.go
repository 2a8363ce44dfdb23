package request

import "strings"

// ParentRequest references one side of the pairing; ID is optional and, when
// set, must resolve to a registered pigeon.
type ParentRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

// CreateFormulaRequest is the payload for starting a breeding formula.
type CreateFormulaRequest struct {
	Father        ParentRequest `json:"father" binding:"required"`
	Mother        ParentRequest `json:"mother" binding:"required"`
	CaseNumber    string        `json:"case_number"`
	YearOfFormula string        `json:"year_of_formula" binding:"required,len=4"`
}

func (r CreateFormulaRequest) ResolveYear() string {
	return strings.TrimSpace(r.YearOfFormula)
}

// TransformEggRequest binds a delivered egg to an offspring pigeon record.
type TransformEggRequest struct {
	PigeonID string `json:"pigeon_id" binding:"required"`
}

func (r TransformEggRequest) ResolvePigeonID() string {
	return strings.TrimSpace(r.PigeonID)
}

// TerminateFormulaRequest carries the caller-supplied termination reason,
// recorded verbatim in the formula history.
type TerminateFormulaRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r TerminateFormulaRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
