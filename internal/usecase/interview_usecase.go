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

type InterviewUsecase struct {
	store   ownedStore[model.Interview]
	advisor service.Advisor
	log     *logger.Logger
}

func NewInterviewUsecase(repo *repository.OwnedRepository[model.Interview], advisor service.Advisor, log *logger.Logger) *InterviewUsecase {
	return &InterviewUsecase{
		store:   ownedStore[model.Interview]{repo: repo, entity: "Interview"},
		advisor: advisor,
		log:     log,
	}
}

// Create generates the question list before storing the interview. When
// generation fails the interview starts with no questions.
func (uc *InterviewUsecase) Create(ctx context.Context, userID uuid.UUID, req dto.CreateInterviewRequest) (*model.Interview, error) {
	if err := checkBodyOwner(userID, req.UserID); err != nil {
		return nil, err
	}

	company := ""
	if req.Company != nil {
		company = *req.Company
	}
	status := model.EnrichmentCompleted
	questions, err := uc.advisor.GenerateInterviewQuestions(ctx, req.JobTitle, company)
	if err != nil {
		uc.log.Warn("interview question generation failed", "entity", "interview", "job_title", req.JobTitle, "error", err)
		questions = []service.InterviewQuestion{}
		status = model.EnrichmentFailed
	}
	stored, err := toJSON(questions)
	if err != nil {
		return nil, apperr.Internal("Failed to create Interview", err)
	}

	i := &model.Interview{
		UserID:           userID,
		JobTitle:         req.JobTitle,
		Company:          req.Company,
		Questions:        stored,
		Duration:         req.Duration,
		EnrichmentStatus: status,
	}
	if err := uc.store.create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (uc *InterviewUsecase) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Interview, error) {
	return uc.store.list(ctx, userID)
}

func (uc *InterviewUsecase) Get(ctx context.Context, userID, id uuid.UUID) (*model.Interview, error) {
	return uc.store.get(ctx, userID, id)
}

func (uc *InterviewUsecase) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateInterviewRequest) (*model.Interview, error) {
	if req.Questions != nil && dto.JSONColumn(req.Questions) == nil {
		return nil, apperr.Validation("Invalid input", map[string]string{"questions": "required"})
	}
	return uc.store.updateOwned(ctx, userID, id, req.Fields())
}

// Evaluate scores the recorded answers. Responses in the request replace the
// stored ones. Advisory failure keeps the responses and marks the record
// failed.
func (uc *InterviewUsecase) Evaluate(ctx context.Context, userID, id uuid.UUID, req dto.EvaluateInterviewRequest) (*model.Interview, error) {
	interview, err := uc.store.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var questions []service.InterviewQuestion
	if err := json.Unmarshal(interview.Questions, &questions); err != nil || len(questions) == 0 {
		return nil, apperr.BadRequest("Interview has no questions to evaluate")
	}

	responses := req.Responses
	fields := map[string]any{}
	if len(responses) > 0 {
		stored, err := toJSON(responses)
		if err != nil {
			return nil, apperr.Internal("Failed to update Interview", err)
		}
		fields["responses"] = stored
	} else {
		responses = decodeResponses(interview.Responses)
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}

	result, err := uc.advisor.AnalyzeInterviewPerformance(ctx, questions, responses)
	if err != nil {
		uc.log.Warn("interview evaluation failed", "entity", "interview", "id", id, "error", err)
		fields["enrichment_status"] = model.EnrichmentFailed
		return uc.store.update(ctx, id, fields)
	}

	feedback, err := toJSON(result)
	if err != nil {
		return nil, apperr.Internal("Failed to update Interview", err)
	}
	fields["feedback"] = feedback
	fields["score"] = roundScore(result.OverallScore)
	fields["completed_at"] = time.Now()
	fields["enrichment_status"] = model.EnrichmentCompleted
	return uc.store.update(ctx, id, fields)
}

func decodeResponses(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err == nil {
		return out
	}
	// responses recorded as objects keep the answer text under "response"
	var objs []struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &objs); err != nil {
		return nil
	}
	out = make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.Response
	}
	return out
}
