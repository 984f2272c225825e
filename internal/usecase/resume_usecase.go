package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/google/uuid"
)

type ResumeUsecase struct {
	store   ownedStore[model.Resume]
	advisor service.Advisor
	log     *logger.Logger
}

func NewResumeUsecase(repo *repository.OwnedRepository[model.Resume], advisor service.Advisor, log *logger.Logger) *ResumeUsecase {
	return &ResumeUsecase{
		store:   ownedStore[model.Resume]{repo: repo, entity: "Resume"},
		advisor: advisor,
		log:     log,
	}
}

func (uc *ResumeUsecase) Create(ctx context.Context, userID uuid.UUID, req dto.CreateResumeRequest) (*model.Resume, error) {
	if err := checkBodyOwner(userID, req.UserID); err != nil {
		return nil, err
	}
	r := &model.Resume{
		UserID:           userID,
		Title:            strings.TrimSpace(req.Title),
		Content:          req.Content,
		EnrichmentStatus: model.EnrichmentPending,
	}
	if err := uc.store.create(ctx, r); err != nil {
		return nil, err
	}
	return uc.enrich(ctx, r.ID, r.Content)
}

// Import extracts the text of an uploaded file and stores it as a resume.
func (uc *ResumeUsecase) Import(ctx context.Context, userID uuid.UUID, title, filename string, data []byte) (*model.Resume, error) {
	content, err := util.ExtractResumeText(filename, data)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSuffix(filename, fileExt(filename))
	}
	req := dto.CreateResumeRequest{Title: title, Content: content}
	if err := util.Validate(&req); err != nil {
		return nil, err
	}
	return uc.Create(ctx, userID, req)
}

func (uc *ResumeUsecase) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Resume, error) {
	return uc.store.list(ctx, userID)
}

func (uc *ResumeUsecase) Get(ctx context.Context, userID, id uuid.UUID) (*model.Resume, error) {
	return uc.store.get(ctx, userID, id)
}

// Update applies the change and re-analyses the resume when its content
// changed.
func (uc *ResumeUsecase) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateResumeRequest) (*model.Resume, error) {
	current, err := uc.store.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	fields := req.Fields()
	contentChanged := req.Content != nil && *req.Content != current.Content
	if contentChanged {
		fields["enrichment_status"] = model.EnrichmentPending
	}
	updated, err := uc.store.update(ctx, id, fields)
	if err != nil || !contentChanged {
		return updated, err
	}
	return uc.enrich(ctx, id, updated.Content)
}

func (uc *ResumeUsecase) Analyze(ctx context.Context, userID, id uuid.UUID) (*model.Resume, error) {
	r, err := uc.store.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, r.ID, r.Content)
}

func (uc *ResumeUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return uc.store.remove(ctx, userID, id)
}

func (uc *ResumeUsecase) enrich(ctx context.Context, id uuid.UUID, content string) (*model.Resume, error) {
	fields, err := uc.analysis(ctx, content)
	if err != nil {
		uc.log.Warn("resume enrichment failed", "entity", "resume", "id", id, "error", err)
		return uc.store.update(ctx, id, map[string]any{"enrichment_status": model.EnrichmentFailed})
	}
	return uc.store.update(ctx, id, fields)
}

func (uc *ResumeUsecase) analysis(ctx context.Context, content string) (map[string]any, error) {
	result, err := uc.advisor.AnalyzeResume(ctx, content)
	if err != nil {
		return nil, err
	}
	analysis, err := toJSON(result.Analysis)
	if err != nil {
		return nil, err
	}
	suggestions, err := toJSON(result.Suggestions)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"analysis":          analysis,
		"score":             roundScore(result.Score),
		"suggestions":       suggestions,
		"enrichment_status": model.EnrichmentCompleted,
	}, nil
}

func fileExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}
