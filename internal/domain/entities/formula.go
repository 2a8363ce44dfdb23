package entities

import "time"

// FormulaStatus represents the lifecycle of a breeding formula.
//
// Domain notes:
//   - The status is derived from the egg/children records; callers never set
//     it directly.
//   - Transitions: INITIATED -> HAS_ONE_EGG -> HAS_TWO_EGG,
//     HAS_ONE_EGG/HAS_TWO_EGG -> HAS_ONE_PIGEON -> HAS_TWO_PIGEON,
//     any non-terminated state -> TERMINATED (terminal).

type FormulaStatus string

const (
	FormulaStatusInitiated    FormulaStatus = "INITIATED"
	FormulaStatusHasOneEgg    FormulaStatus = "HAS_ONE_EGG"
	FormulaStatusHasTwoEgg    FormulaStatus = "HAS_TWO_EGG"
	FormulaStatusHasOnePigeon FormulaStatus = "HAS_ONE_PIGEON"
	FormulaStatusHasTwoPigeon FormulaStatus = "HAS_TWO_PIGEON"
	FormulaStatusTerminated   FormulaStatus = "TERMINATED"
)

// HistoryAction labels one entry in the formula audit trail.

type HistoryAction string

const (
	ActionFormulaInitiated    HistoryAction = "FORMULA_INITIATED"
	ActionFirstEggDelivered   HistoryAction = "FIRST_EGG_DELIVERED"
	ActionSecondEggDelivered  HistoryAction = "SECOND_EGG_DELIVERED"
	ActionFirstEggTransformed HistoryAction = "FIRST_EGG_TRANSFORMED"
	ActionSecondEggTransform  HistoryAction = "SECOND_EGG_TRANSFORMED"
	ActionFormulaTerminated   HistoryAction = "FORMULA_GOT_TERMINATED"
)

// MaxEggsPerFormula caps egg deliveries per formula.
const MaxEggsPerFormula = 2

// Parent references one side of the pairing. ID points at a pigeon record
// when the parent is registered; Name is the free-text fallback.
type Parent struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Egg is a delivered egg prior to identification as a concrete pigeon.
// An egg is "transformed" iff both TransformedToPigeonAt and PigeonID are
// set; this is a one-way transition.
type Egg struct {
	ID                    string     `json:"id"`
	DeliveredAt           time.Time  `json:"delivered_at"`
	TransformedToPigeonAt *time.Time `json:"transformed_to_pigeon_at,omitempty"`
	PigeonID              string     `json:"pigeon_id,omitempty"`
}

// Transformed reports whether the egg has been bound to a pigeon record.
func (e Egg) Transformed() bool {
	return e.TransformedToPigeonAt != nil && e.PigeonID != ""
}

// HistoryEntry is one append-only audit record; entries are never reordered
// or deleted.
type HistoryEntry struct {
	Action      HistoryAction `json:"action"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
}

// Formula is the breeding record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: owner_id
//   - SK: id
//
// Eggs, children and history are stored as lists on the item and are
// append-only: no operation removes or rewrites past entries.
type Formula struct {
	ID            string         `json:"id"`
	OwnerID       string         `json:"owner_id"`
	Father        Parent         `json:"father"`
	Mother        Parent         `json:"mother"`
	CaseNumber    string         `json:"case_number,omitempty"`
	YearOfFormula string         `json:"year_of_formula"`
	Eggs          []Egg          `json:"eggs"`
	Children      []string       `json:"children"`
	Status        FormulaStatus  `json:"status"`
	History       []HistoryEntry `json:"history"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// EggIndexByID returns the position of the egg with the given id, or -1.
func (f Formula) EggIndexByID(eggID string) int {
	for i := range f.Eggs {
		if f.Eggs[i].ID == eggID {
			return i
		}
	}
	return -1
}

// TransformedEggCount counts eggs already bound to a pigeon.
func (f Formula) TransformedEggCount() int {
	n := 0
	for i := range f.Eggs {
		if f.Eggs[i].Transformed() {
			n++
		}
	}
	return n
}
