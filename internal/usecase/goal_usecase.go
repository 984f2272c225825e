package usecase

import (
	"context"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/google/uuid"
)

type GoalUsecase struct {
	store ownedStore[model.Goal]
}

func NewGoalUsecase(repo *repository.OwnedRepository[model.Goal]) *GoalUsecase {
	return &GoalUsecase{store: ownedStore[model.Goal]{repo: repo, entity: "Goal"}}
}

func (uc *GoalUsecase) Create(ctx context.Context, userID uuid.UUID, req dto.CreateGoalRequest) (*model.Goal, error) {
	if err := checkBodyOwner(userID, req.UserID); err != nil {
		return nil, err
	}
	g := &model.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		Milestones:  dto.JSONColumn(req.Milestones),
	}
	if req.Completed != nil {
		g.Completed = *req.Completed
	}
	if req.Progress != nil {
		g.Progress = *req.Progress
	}
	if err := uc.store.create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (uc *GoalUsecase) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	return uc.store.list(ctx, userID)
}

func (uc *GoalUsecase) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateGoalRequest) (*model.Goal, error) {
	return uc.store.updateOwned(ctx, userID, id, req.Fields())
}

func (uc *GoalUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return uc.store.remove(ctx, userID, id)
}
