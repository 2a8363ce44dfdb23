package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pombal/internal/domain/entities"
	"pombal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPigeonNotFound      = errors.New("pigeon not found")
	ErrInvalidPigeonID     = errors.New("invalid pigeon id")
	ErrInvalidPigeonName   = errors.New("invalid pigeon name")
	ErrInvalidRingNumber   = errors.New("invalid ring number")
	ErrInvalidPigeonGender = errors.New("invalid pigeon gender")
	ErrInvalidPigeonStatus = errors.New("invalid pigeon status")
	ErrDuplicateRingNumber = errors.New("ring number already registered")
	ErrDuplicateDocNumber  = errors.New("documentation number already registered")
)

// RegisterPigeonInput carries the validated registration command.
type RegisterPigeonInput struct {
	Name                string
	RingNumber          string
	DocumentationNumber string
	Gender              entities.PigeonGender
	Color               string
	YearOfBirth         string
}

// IPigeonUseCase exposes loft registry operations.

type IPigeonUseCase interface {
	Register(ctx context.Context, ownerID string, input RegisterPigeonInput) (entities.Pigeon, error)
	GetByID(ctx context.Context, ownerID, pigeonID string) (entities.Pigeon, error)
	Search(ctx context.Context, ownerID, query string) ([]entities.Pigeon, error)
	UpdateStatus(ctx context.Context, ownerID, pigeonID string, status entities.PigeonStatus) (entities.Pigeon, error)
}

type PigeonUseCase struct {
	repo   interfaces.IPigeonRepository
	logger *zap.Logger
}

var _ IPigeonUseCase = (*PigeonUseCase)(nil)

func NewPigeonUseCase(repo interfaces.IPigeonRepository, logger *zap.Logger) *PigeonUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PigeonUseCase{repo: repo, logger: logger}
}

func (u *PigeonUseCase) Register(ctx context.Context, ownerID string, input RegisterPigeonInput) (entities.Pigeon, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Pigeon{}, ErrInvalidOwnerID
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Pigeon{}, ErrInvalidPigeonName
	}
	ring := strings.TrimSpace(input.RingNumber)
	if ring == "" {
		return entities.Pigeon{}, ErrInvalidRingNumber
	}
	if input.Gender != entities.PigeonGenderMale && input.Gender != entities.PigeonGenderFemale {
		return entities.Pigeon{}, ErrInvalidPigeonGender
	}

	// Enforce: ring/documentation numbers unique within the owner's loft.
	if existing, err := u.repo.GetByRingNumber(ctx, ownerID, ring); err != nil {
		return entities.Pigeon{}, err
	} else if existing.ID != "" {
		return entities.Pigeon{}, ErrDuplicateRingNumber
	}

	doc := strings.TrimSpace(input.DocumentationNumber)
	if doc != "" {
		if existing, err := u.repo.GetByDocumentationNumber(ctx, ownerID, doc); err != nil {
			return entities.Pigeon{}, err
		} else if existing.ID != "" {
			return entities.Pigeon{}, ErrDuplicateDocNumber
		}
	}

	now := time.Now().UTC()
	p := entities.Pigeon{
		ID:                  uuid.NewString(),
		OwnerID:             ownerID,
		Name:                name,
		RingNumber:          ring,
		DocumentationNumber: doc,
		Gender:              input.Gender,
		Status:              entities.PigeonStatusAlive,
		Color:               strings.TrimSpace(input.Color),
		YearOfBirth:         strings.TrimSpace(input.YearOfBirth),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Pigeon{}, err
	}
	u.logger.Info("pigeon registered",
		zap.String("pigeon_id", created.ID),
		zap.String("owner_id", ownerID),
		zap.String("ring_number", ring))
	return created, nil
}

func (u *PigeonUseCase) GetByID(ctx context.Context, ownerID, pigeonID string) (entities.Pigeon, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Pigeon{}, ErrInvalidOwnerID
	}
	pigeonID = strings.TrimSpace(pigeonID)
	if pigeonID == "" {
		return entities.Pigeon{}, ErrInvalidPigeonID
	}

	p, err := u.repo.GetByID(ctx, ownerID, pigeonID)
	if err != nil {
		return entities.Pigeon{}, err
	}
	if p.ID == "" {
		return entities.Pigeon{}, ErrPigeonNotFound
	}
	return p, nil
}

func (u *PigeonUseCase) Search(ctx context.Context, ownerID, query string) ([]entities.Pigeon, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}

	all, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return all, nil
	}

	needle := strings.ToLower(query)
	matches := make([]entities.Pigeon, 0, len(all))
	for _, p := range all {
		haystack := strings.ToLower(strings.Join([]string{
			p.Name, p.RingNumber, p.DocumentationNumber, p.Color,
		}, " "))
		if strings.Contains(haystack, needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (u *PigeonUseCase) UpdateStatus(ctx context.Context, ownerID, pigeonID string, status entities.PigeonStatus) (entities.Pigeon, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Pigeon{}, ErrInvalidOwnerID
	}
	pigeonID = strings.TrimSpace(pigeonID)
	if pigeonID == "" {
		return entities.Pigeon{}, ErrInvalidPigeonID
	}
	switch status {
	case entities.PigeonStatusAlive, entities.PigeonStatusDead, entities.PigeonStatusSold:
	default:
		return entities.Pigeon{}, ErrInvalidPigeonStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, ownerID, pigeonID, status)
	if err != nil {
		return entities.Pigeon{}, err
	}
	if updated.ID == "" {
		return entities.Pigeon{}, ErrPigeonNotFound
	}
	u.logger.Info("pigeon status updated",
		zap.String("pigeon_id", pigeonID),
		zap.String("owner_id", ownerID),
		zap.String("status", string(status)))
	return updated, nil
}
