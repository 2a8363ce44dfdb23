package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pombal/internal/domain/entities"
	mock_interfaces "pombal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFormulaUseCase_Create(t *testing.T) {
	t.Run("invalid owner id", func(t *testing.T) {
		uc := NewFormulaUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "  ", CreateFormulaInput{YearOfFormula: "2024"})
		if !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("invalid year", func(t *testing.T) {
		uc := NewFormulaUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "owner-1", CreateFormulaInput{YearOfFormula: "24"})
		if !errors.Is(err, ErrInvalidYearOfFormula) {
			t.Fatalf("expected ErrInvalidYearOfFormula, got %v", err)
		}
	})

	t.Run("father lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pigeons := mock_interfaces.NewMockIPigeonRepository(ctrl)
		uc := NewFormulaUseCase(nil, pigeons, nil)

		pigeons.EXPECT().GetByID(gomock.Any(), "owner-1", "father-1").Return(entities.Pigeon{}, nil)

		_, err := uc.Create(context.Background(), "owner-1", CreateFormulaInput{
			Father:        entities.Parent{ID: "father-1", Name: "Rocky"},
			YearOfFormula: "2024",
		})
		if !errors.Is(err, ErrFatherNotFound) {
			t.Fatalf("expected ErrFatherNotFound, got %v", err)
		}
	})

	t.Run("father must be male", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pigeons := mock_interfaces.NewMockIPigeonRepository(ctrl)
		uc := NewFormulaUseCase(nil, pigeons, nil)

		pigeons.EXPECT().GetByID(gomock.Any(), "owner-1", "father-1").Return(entities.Pigeon{
			ID: "father-1", Gender: entities.PigeonGenderFemale, Status: entities.PigeonStatusAlive,
		}, nil)

		_, err := uc.Create(context.Background(), "owner-1", CreateFormulaInput{
			Father:        entities.Parent{ID: "father-1", Name: "Rocky"},
			YearOfFormula: "2024",
		})
		if !errors.Is(err, ErrFatherNotMale) {
			t.Fatalf("expected ErrFatherNotMale, got %v", err)
		}
	})

	t.Run("mother must be alive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pigeons := mock_interfaces.NewMockIPigeonRepository(ctrl)
		uc := NewFormulaUseCase(nil, pigeons, nil)

		pigeons.EXPECT().GetByID(gomock.Any(), "owner-1", "mother-1").Return(entities.Pigeon{
			ID: "mother-1", Gender: entities.PigeonGenderFemale, Status: entities.PigeonStatusDead,
		}, nil)

		_, err := uc.Create(context.Background(), "owner-1", CreateFormulaInput{
			Mother:        entities.Parent{ID: "mother-1", Name: "Luna"},
			YearOfFormula: "2024",
		})
		if !errors.Is(err, ErrMotherNotAlive) {
			t.Fatalf("expected ErrMotherNotAlive, got %v", err)
		}
	})

	t.Run("create success without parent ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Formula{})).DoAndReturn(
			func(_ context.Context, f entities.Formula) (entities.Formula, error) {
				if f.ID == "" || f.OwnerID != "owner-1" || f.YearOfFormula != "2024" {
					t.Fatalf("unexpected formula: %+v", f)
				}
				if f.Status != entities.FormulaStatusInitiated {
					t.Fatalf("expected INITIATED, got %s", f.Status)
				}
				if len(f.Eggs) != 0 || len(f.Children) != 0 {
					t.Fatalf("expected empty eggs/children")
				}
				if len(f.History) != 1 || f.History[0].Action != entities.ActionFormulaInitiated {
					t.Fatalf("expected single FORMULA_INITIATED history entry, got %+v", f.History)
				}
				if f.CreatedAt.IsZero() || f.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return f, nil
			},
		)

		res, err := uc.Create(context.Background(), " owner-1 ", CreateFormulaInput{
			Father:        entities.Parent{Name: "Rocky"},
			Mother:        entities.Parent{Name: "Luna"},
			YearOfFormula: "2024",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestFormulaUseCase_AddEgg(t *testing.T) {
	t.Run("formula not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "f-1").Return(entities.Formula{}, nil)

		_, err := uc.AddEgg(context.Background(), "owner-1", "f-1")
		if !errors.Is(err, ErrFormulaNotFound) {
			t.Fatalf("expected ErrFormulaNotFound, got %v", err)
		}
	})

	t.Run("first then second egg, third rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		stored := entities.Formula{
			ID: "f-1", OwnerID: "owner-1", YearOfFormula: "2024",
			Eggs:     []entities.Egg{},
			Children: []string{},
			Status:   entities.FormulaStatusInitiated,
			History: []entities.HistoryEntry{{
				Action: entities.ActionFormulaInitiated, Date: time.Now().UTC(),
			}},
		}

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "f-1").DoAndReturn(
			func(_ context.Context, _, _ string) (entities.Formula, error) { return stored, nil },
		).Times(3)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Formula{})).DoAndReturn(
			func(_ context.Context, f entities.Formula) (entities.Formula, error) {
				stored = f
				return f, nil
			},
		).Times(2)

		first, err := uc.AddEgg(context.Background(), "owner-1", "f-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Status != entities.FormulaStatusHasOneEgg || len(first.Eggs) != 1 {
			t.Fatalf("unexpected first egg result: %+v", first)
		}
		if first.History[len(first.History)-1].Action != entities.ActionFirstEggDelivered {
			t.Fatalf("expected FIRST_EGG_DELIVERED history entry")
		}

		second, err := uc.AddEgg(context.Background(), "owner-1", "f-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Status != entities.FormulaStatusHasTwoEgg || len(second.Eggs) != 2 {
			t.Fatalf("unexpected second egg result: %+v", second)
		}
		if second.History[len(second.History)-1].Action != entities.ActionSecondEggDelivered {
			t.Fatalf("expected SECOND_EGG_DELIVERED history entry")
		}
		if len(second.History) != 3 {
			t.Fatalf("expected history to grow by one per mutation, got %d entries", len(second.History))
		}

		_, err = uc.AddEgg(context.Background(), "owner-1", "f-1")
		if !errors.Is(err, ErrMaxEggsReached) {
			t.Fatalf("expected ErrMaxEggsReached, got %v", err)
		}
		if len(stored.Eggs) != 2 {
			t.Fatalf("failed AddEgg must leave eggs unchanged, got %d", len(stored.Eggs))
		}
	})
}

func TestFormulaUseCase_TransformEggToPigeon(t *testing.T) {
	makeFormula := func(eggs ...entities.Egg) entities.Formula {
		return entities.Formula{
			ID: "f-1", OwnerID: "owner-1",
			Eggs:     eggs,
			Children: []string{},
			Status:   entities.FormulaStatusHasOneEgg,
			History: []entities.HistoryEntry{
				{Action: entities.ActionFormulaInitiated},
				{Action: entities.ActionFirstEggDelivered},
			},
		}
	}

	t.Run("egg not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "f-1").Return(makeFormula(entities.Egg{ID: "egg-1"}), nil)

		_, err := uc.TransformEggToPigeon(context.Background(), "owner-1", "f-1", "egg-9", "pigeon-123")
		if !errors.Is(err, ErrEggNotFound) {
			t.Fatalf("expected ErrEggNotFound, got %v", err)
		}
	})

	t.Run("egg already transformed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		now := time.Now().UTC()
		f := makeFormula(entities.Egg{ID: "egg-1", TransformedToPigeonAt: &now, PigeonID: "pigeon-1"})
		f.Children = []string{"pigeon-1"}
		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "f-1").Return(f, nil)

		_, err := uc.TransformEggToPigeon(context.Background(), "owner-1", "f-1", "egg-1", "pigeon-2")
		if !errors.Is(err, ErrEggAlreadyTransformed) {
			t.Fatalf("expected ErrEggAlreadyTransformed, got %v", err)
		}
	})

	t.Run("first egg transformed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "f-1").Return(makeFormula(entities.Egg{ID: "egg-1", DeliveredAt: time.Now().UTC()}), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Formula{})).DoAndReturn(
			func(_ context.Context, f entities.Formula) (entities.Formula, error) { return f, nil },
		)

		res, err := uc.TransformEggToPigeon(context.Background(), "owner-1", "f-1", "egg-1", "pigeon-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.FormulaStatusHasOnePigeon {
			t.Fatalf("expected HAS_ONE_PIGEON, got %s", res.Status)
		}
		if len(res.Children) != 1 || res.Children[0] != "pigeon-123" {
			t.Fatalf("unexpected children: %+v", res.Children)
		}
		if !res.Eggs[0].Transformed() || res.Eggs[0].PigeonID != "pigeon-123" {
			t.Fatalf("egg not bound: %+v", res.Eggs[0])
		}
		if res.History[len(res.History)-1].Action != entities.ActionFirstEggTransformed {
			t.Fatalf("expected FIRST_EGG_TRANSFORMED history entry")
		}
	})

	t.Run("second egg transformed by position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "f-1").Return(
			makeFormula(entities.Egg{ID: "egg-1"}, entities.Egg{ID: "egg-2"}), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Formula{})).DoAndReturn(
			func(_ context.Context, f entities.Formula) (entities.Formula, error) { return f, nil },
		)

		res, err := uc.TransformEggToPigeon(context.Background(), "owner-1", "f-1", "egg-2", "pigeon-456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Only one egg is transformed overall, but the label follows the
		// egg's list position.
		if res.Status != entities.FormulaStatusHasOnePigeon {
			t.Fatalf("expected HAS_ONE_PIGEON, got %s", res.Status)
		}
		if res.History[len(res.History)-1].Action != entities.ActionSecondEggTransform {
			t.Fatalf("expected SECOND_EGG_TRANSFORMED history entry")
		}
	})
}

func TestFormulaUseCase_Terminate(t *testing.T) {
	t.Run("invalid reason", func(t *testing.T) {
		uc := NewFormulaUseCase(nil, nil, nil)
		_, err := uc.Terminate(context.Background(), "owner-1", "f-1", "  ")
		if !errors.Is(err, ErrInvalidTerminationReason) {
			t.Fatalf("expected ErrInvalidTerminationReason, got %v", err)
		}
	})

	t.Run("already terminated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "f-1").Return(entities.Formula{
			ID: "f-1", Status: entities.FormulaStatusTerminated,
		}, nil)

		_, err := uc.Terminate(context.Background(), "owner-1", "f-1", "injury")
		if !errors.Is(err, ErrFormulaTerminated) {
			t.Fatalf("expected ErrFormulaTerminated, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "f-1").Return(entities.Formula{
			ID: "f-1", Status: entities.FormulaStatusHasOneEgg,
			History: []entities.HistoryEntry{{Action: entities.ActionFormulaInitiated}},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Formula{})).DoAndReturn(
			func(_ context.Context, f entities.Formula) (entities.Formula, error) { return f, nil },
		)

		res, err := uc.Terminate(context.Background(), "owner-1", "f-1", "injury")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.FormulaStatusTerminated {
			t.Fatalf("expected TERMINATED, got %s", res.Status)
		}
		last := res.History[len(res.History)-1]
		if last.Action != entities.ActionFormulaTerminated || last.Description != "injury" {
			t.Fatalf("unexpected final history entry: %+v", last)
		}
	})
}

func TestFormulaUseCase_Search(t *testing.T) {
	t.Run("invalid owner", func(t *testing.T) {
		uc := NewFormulaUseCase(nil, nil, nil)
		_, err := uc.Search(context.Background(), "", "rocky")
		if !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("case-insensitive substring match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		uc := NewFormulaUseCase(repo, nil, nil)

		all := []entities.Formula{
			{ID: "f-1", Father: entities.Parent{Name: "Rocky"}, Mother: entities.Parent{Name: "Luna"}, YearOfFormula: "2024"},
			{ID: "f-2", Father: entities.Parent{Name: "Storm"}, Mother: entities.Parent{Name: "Misty"}, YearOfFormula: "2023"},
			{ID: "f-3", CaseNumber: "ROCKET-9", YearOfFormula: "2022"},
		}
		repo.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(all, nil).Times(3)

		res, err := uc.Search(context.Background(), "owner-1", "rock")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "f-1" || res[1].ID != "f-3" {
			t.Fatalf("unexpected matches: %+v", res)
		}

		res, err = uc.Search(context.Background(), "owner-1", "2023")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "f-2" {
			t.Fatalf("unexpected matches: %+v", res)
		}

		res, err = uc.Search(context.Background(), "owner-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 {
			t.Fatalf("empty query should return all, got %d", len(res))
		}
	})
}

func TestFormulaUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
	uc := NewFormulaUseCase(repo, nil, nil)

	repo.EXPECT().CountByOwner(gomock.Any(), "owner-1").Return(3, nil)
	repo.EXPECT().CountByStatus(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, status entities.FormulaStatus) (int, error) {
			if status == entities.FormulaStatusTerminated {
				return 2, nil
			}
			return 0, nil
		},
	).Times(6)

	stats, err := uc.Stats(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.ByStatus[entities.FormulaStatusTerminated] != 2 {
		t.Fatalf("unexpected stats: %+v", stats.ByStatus)
	}
}
