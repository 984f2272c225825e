package usecase

import (
	"context"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/google/uuid"
)

type SkillUsecase struct {
	store   ownedStore[model.Skill]
	advisor service.Advisor
	log     *logger.Logger
}

func NewSkillUsecase(repo *repository.OwnedRepository[model.Skill], advisor service.Advisor, log *logger.Logger) *SkillUsecase {
	return &SkillUsecase{
		store:   ownedStore[model.Skill]{repo: repo, entity: "Skill"},
		advisor: advisor,
		log:     log,
	}
}

func (uc *SkillUsecase) Create(ctx context.Context, userID uuid.UUID, req dto.CreateSkillRequest) (*model.Skill, error) {
	if err := checkBodyOwner(userID, req.UserID); err != nil {
		return nil, err
	}
	s := &model.Skill{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
		Evidence: dto.JSONColumn(req.Evidence),
	}
	if req.Validated != nil {
		s.Validated = *req.Validated
	}
	if err := uc.store.create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SkillUsecase) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Skill, error) {
	return uc.store.list(ctx, userID)
}

func (uc *SkillUsecase) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateSkillRequest) (*model.Skill, error) {
	return uc.store.updateOwned(ctx, userID, id, req.Fields())
}

func (uc *SkillUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return uc.store.remove(ctx, userID, id)
}

// GapAnalysis compares the user's stored skills with a target role. Unlike
// record enrichment, the analysis is the whole response, so advisory failure
// is surfaced.
func (uc *SkillUsecase) GapAnalysis(ctx context.Context, userID uuid.UUID, req dto.SkillGapRequest) (*service.SkillGapResult, error) {
	skills, err := uc.store.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	snapshots := make([]service.SkillSnapshot, 0, len(skills))
	for _, s := range skills {
		snapshots = append(snapshots, service.SkillSnapshot{Name: s.Name, Category: deref(s.Category), Level: s.Level})
	}

	result, err := uc.advisor.AnalyzeSkillGaps(ctx, snapshots, req.TargetRole, deref(req.Industry))
	if err != nil {
		uc.log.Warn("skill gap analysis failed", "entity", "skill", "user_id", userID, "error", err)
		return nil, apperr.Advisory("Skill gap analysis is unavailable, try again later", err)
	}
	return result, nil
}
