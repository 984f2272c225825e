package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

// OpenRouterService is the OpenAI-compatible advisory provider.
type OpenRouterService struct {
	client *resty.Client
	model  string
	log    *logger.Logger
}

var _ Advisor = (*OpenRouterService)(nil)

func NewOpenRouterService(cfg *config.OpenRouterConfig, timeout time.Duration, maxRetries int, log *logger.Logger) (*OpenRouterService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout).
		SetRetryCount(maxRetries).
		SetRetryWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	return &OpenRouterService{client: client, model: cfg.Model, log: log}, nil
}

func (s *OpenRouterService) AnalyzeCareerFit(ctx context.Context, in CareerAssessmentInput) (*CareerFitResult, error) {
	var out CareerFitResult
	if err := s.complete(ctx, "career_fit", careerFitPrompt(in), careerFitSchema, &out); err != nil {
		return nil, fmt.Errorf("analyze career fit: %w", err)
	}
	return &out, nil
}

func (s *OpenRouterService) AnalyzeResume(ctx context.Context, content string) (*ResumeAnalysisResult, error) {
	var out ResumeAnalysisResult
	if err := s.complete(ctx, "resume_analysis", resumePrompt(content), resumeAnalysisSchema, &out); err != nil {
		return nil, fmt.Errorf("analyze resume: %w", err)
	}
	return &out, nil
}

func (s *OpenRouterService) GenerateInterviewQuestions(ctx context.Context, jobTitle, company string) ([]InterviewQuestion, error) {
	var out []InterviewQuestion
	if err := s.complete(ctx, "interview_questions", interviewQuestionsPrompt(jobTitle, company), interviewQuestionsSchema, &out); err != nil {
		return nil, fmt.Errorf("generate interview questions: %w", err)
	}
	return out, nil
}

func (s *OpenRouterService) GenerateCareerRecommendations(ctx context.Context, currentRole, targetRole, industry string) (*CareerPlanResult, error) {
	var out CareerPlanResult
	if err := s.complete(ctx, "career_plan", careerPlanPrompt(currentRole, targetRole, industry), careerPlanSchema, &out); err != nil {
		return nil, fmt.Errorf("generate career recommendations: %w", err)
	}
	return &out, nil
}

func (s *OpenRouterService) AnalyzeInterviewPerformance(ctx context.Context, questions []InterviewQuestion, responses []string) (*InterviewPerformanceResult, error) {
	var out InterviewPerformanceResult
	if err := s.complete(ctx, "interview_performance", interviewPerformancePrompt(questions, responses), interviewPerformanceSchema, &out); err != nil {
		return nil, fmt.Errorf("analyze interview performance: %w", err)
	}
	return &out, nil
}

func (s *OpenRouterService) AnalyzeSkillGaps(ctx context.Context, skills []SkillSnapshot, targetRole, industry string) (*SkillGapResult, error) {
	var out SkillGapResult
	if err := s.complete(ctx, "skill_gaps", skillGapPrompt(skills, targetRole, industry), skillGapSchema, &out); err != nil {
		return nil, fmt.Errorf("analyze skill gaps: %w", err)
	}
	return &out, nil
}

func (s *OpenRouterService) complete(ctx context.Context, name, prompt string, schema *genai.Schema, out any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": systemInstruction},
				{"role": "user", "content": prompt},
			},
			"response_format": map[string]any{
				"type": "json_schema",
				"json_schema": map[string]any{
					"name":   name,
					"schema": jsonSchema(schema),
				},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return fmt.Errorf("%w: openrouter request: %w", ErrAdvisory, err)
	}

	body := resp.String()
	if resp.IsError() {
		msg := gjson.Get(body, "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		s.log.Warn("openrouter request failed", "status", resp.StatusCode(), "model", s.model, "error", msg)
		return fmt.Errorf("%w: openrouter status %d: %s", ErrAdvisory, resp.StatusCode(), msg)
	}

	text := gjson.Get(body, "choices.0.message.content").String()
	return decodePayload(text, schema, out)
}
