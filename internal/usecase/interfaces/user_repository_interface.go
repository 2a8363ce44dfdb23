package interfaces

import (
	"context"
	"pombal/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}
