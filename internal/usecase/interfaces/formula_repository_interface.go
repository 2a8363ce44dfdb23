package interfaces

import (
	"context"
	"pombal/internal/domain/entities"
)

// IFormulaRepository abstracts DynamoDB persistence for Formula.
//
// All reads/writes are scoped by owner id. Update persists the mutated
// status/eggs/children/history lists of an existing record; there is no
// version check, so concurrent updates to the same formula are
// last-write-wins (accepted, see DESIGN.md).

type IFormulaRepository interface {
	Create(ctx context.Context, f entities.Formula) (entities.Formula, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.Formula, error)
	Update(ctx context.Context, f entities.Formula) (entities.Formula, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Formula, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	CountByStatus(ctx context.Context, ownerID string, status entities.FormulaStatus) (int, error)
}
