package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssessmentUsecase struct {
	store   ownedStore[model.Assessment]
	advisor service.Advisor
	log     *logger.Logger
}

func NewAssessmentUsecase(repo *repository.OwnedRepository[model.Assessment], advisor service.Advisor, log *logger.Logger) *AssessmentUsecase {
	return &AssessmentUsecase{
		store:   ownedStore[model.Assessment]{repo: repo, entity: "Assessment"},
		advisor: advisor,
		log:     log,
	}
}

// Create stores the assessment and, for career assessments, enriches it with
// a career fit analysis. Enrichment failure leaves the AI fields empty.
func (uc *AssessmentUsecase) Create(ctx context.Context, userID uuid.UUID, req dto.CreateAssessmentRequest) (*model.Assessment, error) {
	if err := checkBodyOwner(userID, req.UserID); err != nil {
		return nil, err
	}
	data := dto.JSONColumn(req.Data)
	if data == nil {
		return nil, apperr.Validation("Invalid input", map[string]string{"data": "required"})
	}

	a := &model.Assessment{
		UserID:           userID,
		Type:             req.Type,
		Data:             data,
		EnrichmentStatus: model.EnrichmentSkipped,
	}
	if a.Type == model.AssessmentTypeCareer {
		a.EnrichmentStatus = model.EnrichmentPending
	}
	if err := uc.store.create(ctx, a); err != nil {
		return nil, err
	}
	if a.Type != model.AssessmentTypeCareer {
		return a, nil
	}
	return uc.enrich(ctx, a)
}

func (uc *AssessmentUsecase) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Assessment, error) {
	return uc.store.list(ctx, userID)
}

func (uc *AssessmentUsecase) Get(ctx context.Context, userID, id uuid.UUID) (*model.Assessment, error) {
	return uc.store.get(ctx, userID, id)
}

func (uc *AssessmentUsecase) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateAssessmentRequest) (*model.Assessment, error) {
	if req.Data != nil && dto.JSONColumn(req.Data) == nil {
		return nil, apperr.Validation("Invalid input", map[string]string{"data": "required"})
	}
	return uc.store.updateOwned(ctx, userID, id, req.Fields())
}

// Analyze re-runs the career fit analysis on demand.
func (uc *AssessmentUsecase) Analyze(ctx context.Context, userID, id uuid.UUID) (*model.Assessment, error) {
	a, err := uc.store.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if a.Type != model.AssessmentTypeCareer {
		return nil, apperr.BadRequest("Only career assessments can be analyzed")
	}
	return uc.enrich(ctx, a)
}

func (uc *AssessmentUsecase) enrich(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	fields, err := uc.careerFit(ctx, a.Data)
	if err != nil {
		uc.log.Warn("assessment enrichment failed", "entity", "assessment", "id", a.ID, "error", err)
		return uc.store.update(ctx, a.ID, map[string]any{"enrichment_status": model.EnrichmentFailed})
	}
	return uc.store.update(ctx, a.ID, fields)
}

func (uc *AssessmentUsecase) careerFit(ctx context.Context, data datatypes.JSON) (map[string]any, error) {
	var in service.CareerAssessmentInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	result, err := uc.advisor.AnalyzeCareerFit(ctx, in)
	if err != nil {
		return nil, err
	}
	results, err := toJSON(result)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"results":           results,
		"score":             roundScore(result.OverallScore),
		"completed_at":      time.Now(),
		"enrichment_status": model.EnrichmentCompleted,
	}, nil
}
