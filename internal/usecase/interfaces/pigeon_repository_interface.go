package interfaces

import (
	"context"
	"pombal/internal/domain/entities"
)

// IPigeonRepository abstracts DynamoDB persistence for Pigeon.
//
// The registry must be able to:
//   - register a pigeon (ring/documentation numbers unique per owner)
//   - resolve a pigeon by id for parent validation on formulas
//   - list an owner's loft and update a bird's status

type IPigeonRepository interface {
	Create(ctx context.Context, p entities.Pigeon) (entities.Pigeon, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.Pigeon, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Pigeon, error)
	GetByRingNumber(ctx context.Context, ownerID, ringNumber string) (entities.Pigeon, error)
	GetByDocumentationNumber(ctx context.Context, ownerID, documentationNumber string) (entities.Pigeon, error)
	UpdateStatus(ctx context.Context, ownerID, id string, status entities.PigeonStatus) (entities.Pigeon, error)
}
