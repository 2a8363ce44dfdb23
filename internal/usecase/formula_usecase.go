package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pombal/internal/domain/entities"
	"pombal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFormulaNotFound          = errors.New("formula not found")
	ErrEggNotFound              = errors.New("egg not found")
	ErrInvalidOwnerID           = errors.New("invalid owner id")
	ErrInvalidFormulaID         = errors.New("invalid formula id")
	ErrInvalidEggID             = errors.New("invalid egg id")
	ErrInvalidYearOfFormula     = errors.New("invalid year of formula")
	ErrInvalidChildPigeonID     = errors.New("invalid pigeon id")
	ErrInvalidTerminationReason = errors.New("invalid termination reason")
	ErrFatherNotFound           = errors.New("father pigeon not found")
	ErrFatherNotMale            = errors.New("father pigeon must be male")
	ErrFatherNotAlive           = errors.New("father pigeon must be alive")
	ErrMotherNotFound           = errors.New("mother pigeon not found")
	ErrMotherNotFemale          = errors.New("mother pigeon must be female")
	ErrMotherNotAlive           = errors.New("mother pigeon must be alive")
	ErrMaxEggsReached           = errors.New("maximum number of eggs reached")
	ErrEggAlreadyTransformed    = errors.New("egg already transformed")
	ErrFormulaTerminated        = errors.New("formula already terminated")
)

// CreateFormulaInput carries the validated creation command.
type CreateFormulaInput struct {
	Father        entities.Parent
	Mother        entities.Parent
	CaseNumber    string
	YearOfFormula string
}

// FormulaStats aggregates an owner's formula counts per status.
type FormulaStats struct {
	Total    int                            `json:"total"`
	ByStatus map[entities.FormulaStatus]int `json:"by_status"`
}

// IFormulaUseCase exposes the breeding-formula lifecycle.
//
// Transitions append exactly one history entry per successful mutation and
// never delete or rewrite eggs, children or past history.

type IFormulaUseCase interface {
	Create(ctx context.Context, ownerID string, input CreateFormulaInput) (entities.Formula, error)
	GetByID(ctx context.Context, ownerID, formulaID string) (entities.Formula, error)
	AddEgg(ctx context.Context, ownerID, formulaID string) (entities.Formula, error)
	TransformEggToPigeon(ctx context.Context, ownerID, formulaID, eggID, pigeonID string) (entities.Formula, error)
	Terminate(ctx context.Context, ownerID, formulaID, reason string) (entities.Formula, error)
	Search(ctx context.Context, ownerID, query string) ([]entities.Formula, error)
	Stats(ctx context.Context, ownerID string) (FormulaStats, error)
}

type FormulaUseCase struct {
	repo       interfaces.IFormulaRepository
	pigeonRepo interfaces.IPigeonRepository
	logger     *zap.Logger
}

var _ IFormulaUseCase = (*FormulaUseCase)(nil)

func NewFormulaUseCase(repo interfaces.IFormulaRepository, pigeonRepo interfaces.IPigeonRepository, logger *zap.Logger) *FormulaUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormulaUseCase{repo: repo, pigeonRepo: pigeonRepo, logger: logger}
}

func (u *FormulaUseCase) Create(ctx context.Context, ownerID string, input CreateFormulaInput) (entities.Formula, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Formula{}, ErrInvalidOwnerID
	}
	if len(strings.TrimSpace(input.YearOfFormula)) != 4 {
		return entities.Formula{}, ErrInvalidYearOfFormula
	}

	if err := u.validateParent(ctx, ownerID, input.Father, entities.PigeonGenderMale); err != nil {
		return entities.Formula{}, err
	}
	if err := u.validateParent(ctx, ownerID, input.Mother, entities.PigeonGenderFemale); err != nil {
		return entities.Formula{}, err
	}

	now := time.Now().UTC()
	f := entities.Formula{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Father:        input.Father,
		Mother:        input.Mother,
		CaseNumber:    strings.TrimSpace(input.CaseNumber),
		YearOfFormula: strings.TrimSpace(input.YearOfFormula),
		Eggs:          []entities.Egg{},
		Children:      []string{},
		Status:        entities.FormulaStatusInitiated,
		History: []entities.HistoryEntry{{
			Action:      entities.ActionFormulaInitiated,
			Description: "Formula has been created",
			Date:        now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, f)
	if err != nil {
		return entities.Formula{}, err
	}
	u.logger.Info("formula created",
		zap.String("formula_id", created.ID),
		zap.String("owner_id", ownerID))
	return created, nil
}

func (u *FormulaUseCase) validateParent(ctx context.Context, ownerID string, parent entities.Parent, wantGender entities.PigeonGender) error {
	if strings.TrimSpace(parent.ID) == "" {
		return nil
	}

	p, err := u.pigeonRepo.GetByID(ctx, ownerID, strings.TrimSpace(parent.ID))
	if err != nil {
		return err
	}

	isFather := wantGender == entities.PigeonGenderMale
	if p.ID == "" {
		if isFather {
			return ErrFatherNotFound
		}
		return ErrMotherNotFound
	}
	if p.Gender != wantGender {
		if isFather {
			return ErrFatherNotMale
		}
		return ErrMotherNotFemale
	}
	if p.Status != entities.PigeonStatusAlive {
		if isFather {
			return ErrFatherNotAlive
		}
		return ErrMotherNotAlive
	}
	return nil
}

func (u *FormulaUseCase) GetByID(ctx context.Context, ownerID, formulaID string) (entities.Formula, error) {
	return u.load(ctx, ownerID, formulaID)
}

func (u *FormulaUseCase) AddEgg(ctx context.Context, ownerID, formulaID string) (entities.Formula, error) {
	f, err := u.load(ctx, ownerID, formulaID)
	if err != nil {
		return entities.Formula{}, err
	}

	if len(f.Eggs) >= entities.MaxEggsPerFormula {
		return entities.Formula{}, ErrMaxEggsReached
	}

	now := time.Now().UTC()
	f.Eggs = append(f.Eggs, entities.Egg{ID: uuid.NewString(), DeliveredAt: now})

	action := entities.ActionFirstEggDelivered
	description := "First egg has been delivered"
	status := entities.FormulaStatusHasOneEgg
	if len(f.Eggs) == 2 {
		action = entities.ActionSecondEggDelivered
		description = "Second egg has been delivered"
		status = entities.FormulaStatusHasTwoEgg
	}
	f.Status = status
	f.History = append(f.History, entities.HistoryEntry{Action: action, Description: description, Date: now})
	f.UpdatedAt = now

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.Formula{}, err
	}
	u.logger.Info("egg delivered",
		zap.String("formula_id", f.ID),
		zap.String("owner_id", ownerID),
		zap.Int("egg_count", len(f.Eggs)))
	return updated, nil
}

func (u *FormulaUseCase) TransformEggToPigeon(ctx context.Context, ownerID, formulaID, eggID, pigeonID string) (entities.Formula, error) {
	eggID = strings.TrimSpace(eggID)
	if eggID == "" {
		return entities.Formula{}, ErrInvalidEggID
	}
	pigeonID = strings.TrimSpace(pigeonID)
	if pigeonID == "" {
		return entities.Formula{}, ErrInvalidChildPigeonID
	}

	f, err := u.load(ctx, ownerID, formulaID)
	if err != nil {
		return entities.Formula{}, err
	}

	idx := f.EggIndexByID(eggID)
	if idx < 0 {
		return entities.Formula{}, ErrEggNotFound
	}
	if f.Eggs[idx].Transformed() {
		return entities.Formula{}, ErrEggAlreadyTransformed
	}

	now := time.Now().UTC()
	f.Eggs[idx].TransformedToPigeonAt = &now
	f.Eggs[idx].PigeonID = pigeonID
	f.Children = append(f.Children, pigeonID)

	if f.TransformedEggCount() == 1 {
		f.Status = entities.FormulaStatusHasOnePigeon
	} else {
		f.Status = entities.FormulaStatusHasTwoPigeon
	}

	// The first/second label follows the egg's position in the list, not
	// delivery order. Eggs are append-only, so the two coincide.
	action := entities.ActionFirstEggTransformed
	description := fmt.Sprintf("First egg has been transformed to pigeon %s", pigeonID)
	if idx != 0 {
		action = entities.ActionSecondEggTransform
		description = fmt.Sprintf("Second egg has been transformed to pigeon %s", pigeonID)
	}
	f.History = append(f.History, entities.HistoryEntry{Action: action, Description: description, Date: now})
	f.UpdatedAt = now

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.Formula{}, err
	}
	u.logger.Info("egg transformed",
		zap.String("formula_id", f.ID),
		zap.String("owner_id", ownerID),
		zap.String("egg_id", eggID),
		zap.String("pigeon_id", pigeonID))
	return updated, nil
}

func (u *FormulaUseCase) Terminate(ctx context.Context, ownerID, formulaID, reason string) (entities.Formula, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Formula{}, ErrInvalidTerminationReason
	}

	f, err := u.load(ctx, ownerID, formulaID)
	if err != nil {
		return entities.Formula{}, err
	}

	if f.Status == entities.FormulaStatusTerminated {
		return entities.Formula{}, ErrFormulaTerminated
	}

	now := time.Now().UTC()
	f.Status = entities.FormulaStatusTerminated
	f.History = append(f.History, entities.HistoryEntry{
		Action:      entities.ActionFormulaTerminated,
		Description: reason,
		Date:        now,
	})
	f.UpdatedAt = now

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.Formula{}, err
	}
	u.logger.Info("formula terminated",
		zap.String("formula_id", f.ID),
		zap.String("owner_id", ownerID),
		zap.String("reason", reason))
	return updated, nil
}

func (u *FormulaUseCase) Search(ctx context.Context, ownerID, query string) ([]entities.Formula, error) {
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
	matches := make([]entities.Formula, 0, len(all))
	for _, f := range all {
		haystack := strings.ToLower(strings.Join([]string{
			f.Father.Name, f.Mother.Name, f.CaseNumber, f.YearOfFormula,
		}, " "))
		if strings.Contains(haystack, needle) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

func (u *FormulaUseCase) Stats(ctx context.Context, ownerID string) (FormulaStats, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return FormulaStats{}, ErrInvalidOwnerID
	}

	total, err := u.repo.CountByOwner(ctx, ownerID)
	if err != nil {
		return FormulaStats{}, err
	}

	stats := FormulaStats{Total: total, ByStatus: make(map[entities.FormulaStatus]int)}
	for _, status := range []entities.FormulaStatus{
		entities.FormulaStatusInitiated,
		entities.FormulaStatusHasOneEgg,
		entities.FormulaStatusHasTwoEgg,
		entities.FormulaStatusHasOnePigeon,
		entities.FormulaStatusHasTwoPigeon,
		entities.FormulaStatusTerminated,
	} {
		n, err := u.repo.CountByStatus(ctx, ownerID, status)
		if err != nil {
			return FormulaStats{}, err
		}
		stats.ByStatus[status] = n
	}
	return stats, nil
}

func (u *FormulaUseCase) load(ctx context.Context, ownerID, formulaID string) (entities.Formula, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Formula{}, ErrInvalidOwnerID
	}
	formulaID = strings.TrimSpace(formulaID)
	if formulaID == "" {
		return entities.Formula{}, ErrInvalidFormulaID
	}

	f, err := u.repo.GetByID(ctx, ownerID, formulaID)
	if err != nil {
		return entities.Formula{}, err
	}
	if f.ID == "" {
		return entities.Formula{}, ErrFormulaNotFound
	}
	return f, nil
}
