package usecase

import (
	"context"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/google/uuid"
)

type CareerPathUsecase struct {
	store   ownedStore[model.CareerPath]
	advisor service.Advisor
	log     *logger.Logger
}

func NewCareerPathUsecase(repo *repository.OwnedRepository[model.CareerPath], advisor service.Advisor, log *logger.Logger) *CareerPathUsecase {
	return &CareerPathUsecase{
		store:   ownedStore[model.CareerPath]{repo: repo, entity: "Career path"},
		advisor: advisor,
		log:     log,
	}
}

func (uc *CareerPathUsecase) Create(ctx context.Context, userID uuid.UUID, req dto.CreateCareerPathRequest) (*model.CareerPath, error) {
	if err := checkBodyOwner(userID, req.UserID); err != nil {
		return nil, err
	}
	p := &model.CareerPath{
		UserID:           userID,
		CurrentRole:      req.CurrentRole,
		TargetRole:       req.TargetRole,
		Industry:         req.Industry,
		EnrichmentStatus: model.EnrichmentPending,
	}
	if err := uc.store.create(ctx, p); err != nil {
		return nil, err
	}
	return uc.enrich(ctx, p)
}

func (uc *CareerPathUsecase) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.CareerPath, error) {
	return uc.store.list(ctx, userID)
}

func (uc *CareerPathUsecase) Get(ctx context.Context, userID, id uuid.UUID) (*model.CareerPath, error) {
	return uc.store.get(ctx, userID, id)
}

func (uc *CareerPathUsecase) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateCareerPathRequest) (*model.CareerPath, error) {
	return uc.store.updateOwned(ctx, userID, id, req.Fields())
}

// Regenerate asks for a fresh plan for the stored roles.
func (uc *CareerPathUsecase) Regenerate(ctx context.Context, userID, id uuid.UUID) (*model.CareerPath, error) {
	p, err := uc.store.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, p)
}

func (uc *CareerPathUsecase) enrich(ctx context.Context, p *model.CareerPath) (*model.CareerPath, error) {
	fields, err := uc.plan(ctx, p)
	if err != nil {
		uc.log.Warn("career path enrichment failed", "entity", "career_path", "id", p.ID, "error", err)
		return uc.store.update(ctx, p.ID, map[string]any{"enrichment_status": model.EnrichmentFailed})
	}
	return uc.store.update(ctx, p.ID, fields)
}

func (uc *CareerPathUsecase) plan(ctx context.Context, p *model.CareerPath) (map[string]any, error) {
	result, err := uc.advisor.GenerateCareerRecommendations(ctx, deref(p.CurrentRole), p.TargetRole, deref(p.Industry))
	if err != nil {
		return nil, err
	}
	fields := map[string]any{"enrichment_status": model.EnrichmentCompleted}
	parts := map[string]any{
		"steps":         result.Steps,
		"timeline":      result.Timeline,
		"skill_gaps":    result.SkillGaps,
		"learning_plan": result.LearningPlan,
	}
	for col, v := range parts {
		j, err := toJSON(v)
		if err != nil {
			return nil, err
		}
		fields[col] = j
	}
	return fields, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
