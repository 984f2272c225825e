package usecase

import (
	"context"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/google/uuid"
)

const defaultRecommendationPriority = 5

type RecommendationUsecase struct {
	store ownedStore[model.Recommendation]
}

func NewRecommendationUsecase(repo *repository.OwnedRepository[model.Recommendation]) *RecommendationUsecase {
	return &RecommendationUsecase{store: ownedStore[model.Recommendation]{repo: repo, entity: "Recommendation"}}
}

func (uc *RecommendationUsecase) Create(ctx context.Context, userID uuid.UUID, req dto.CreateRecommendationRequest) (*model.Recommendation, error) {
	if err := checkBodyOwner(userID, req.UserID); err != nil {
		return nil, err
	}
	r := &model.Recommendation{
		UserID:      userID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Metadata:    dto.JSONColumn(req.Metadata),
		Priority:    defaultRecommendationPriority,
	}
	if req.Priority != nil {
		r.Priority = *req.Priority
	}
	if req.Completed != nil {
		r.Completed = *req.Completed
	}
	if err := uc.store.create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *RecommendationUsecase) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Recommendation, error) {
	return uc.store.list(ctx, userID)
}

func (uc *RecommendationUsecase) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateRecommendationRequest) (*model.Recommendation, error) {
	return uc.store.updateOwned(ctx, userID, id, req.Fields())
}
