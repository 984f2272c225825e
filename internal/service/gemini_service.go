package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/logger"
	"google.golang.org/genai"
)

// contentGenerator is the part of genai.Models the advisor depends on.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	models         contentGenerator
	log            *logger.Logger
	FastModel      string
	ProModel       string
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RequestTimeout time.Duration

	// CircuitCooldown is how long an open breaker rejects calls before it
	// lets a single trial request through.
	CircuitCooldown time.Duration

	mu                sync.Mutex
	consecutiveErrors int
	circuitBreakerMax int
	openedAt          time.Time
	trialInFlight     bool
	now               func() time.Time
}

var _ Advisor = (*GeminiService)(nil)

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, log *logger.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newGeminiService(client.Models, cfg, log), nil
}

func newGeminiService(models contentGenerator, cfg *config.GeminiConfig, log *logger.Logger) *GeminiService {
	return &GeminiService{
		models:            models,
		log:               log,
		FastModel:         cfg.FastModel,
		ProModel:          cfg.ProModel,
		MaxRetries:        cfg.MaxRetries,
		BaseDelay:         time.Second,
		MaxDelay:          30 * time.Second,
		RequestTimeout:    cfg.RequestTimeout,
		CircuitCooldown:   cfg.CircuitCooldown,
		circuitBreakerMax: 5,
		now:               time.Now,
	}
}

func (s *GeminiService) AnalyzeCareerFit(ctx context.Context, in CareerAssessmentInput) (*CareerFitResult, error) {
	var out CareerFitResult
	if err := s.generateJSON(ctx, s.FastModel, careerFitPrompt(in), careerFitSchema, &out); err != nil {
		return nil, fmt.Errorf("analyze career fit: %w", err)
	}
	return &out, nil
}

func (s *GeminiService) AnalyzeResume(ctx context.Context, content string) (*ResumeAnalysisResult, error) {
	var out ResumeAnalysisResult
	if err := s.generateJSON(ctx, s.ProModel, resumePrompt(content), resumeAnalysisSchema, &out); err != nil {
		return nil, fmt.Errorf("analyze resume: %w", err)
	}
	return &out, nil
}

func (s *GeminiService) GenerateInterviewQuestions(ctx context.Context, jobTitle, company string) ([]InterviewQuestion, error) {
	var out []InterviewQuestion
	if err := s.generateJSON(ctx, s.FastModel, interviewQuestionsPrompt(jobTitle, company), interviewQuestionsSchema, &out); err != nil {
		return nil, fmt.Errorf("generate interview questions: %w", err)
	}
	return out, nil
}

func (s *GeminiService) GenerateCareerRecommendations(ctx context.Context, currentRole, targetRole, industry string) (*CareerPlanResult, error) {
	var out CareerPlanResult
	if err := s.generateJSON(ctx, s.ProModel, careerPlanPrompt(currentRole, targetRole, industry), careerPlanSchema, &out); err != nil {
		return nil, fmt.Errorf("generate career recommendations: %w", err)
	}
	return &out, nil
}

func (s *GeminiService) AnalyzeInterviewPerformance(ctx context.Context, questions []InterviewQuestion, responses []string) (*InterviewPerformanceResult, error) {
	var out InterviewPerformanceResult
	if err := s.generateJSON(ctx, s.ProModel, interviewPerformancePrompt(questions, responses), interviewPerformanceSchema, &out); err != nil {
		return nil, fmt.Errorf("analyze interview performance: %w", err)
	}
	return &out, nil
}

func (s *GeminiService) AnalyzeSkillGaps(ctx context.Context, skills []SkillSnapshot, targetRole, industry string) (*SkillGapResult, error) {
	var out SkillGapResult
	if err := s.generateJSON(ctx, s.FastModel, skillGapPrompt(skills, targetRole, industry), skillGapSchema, &out); err != nil {
		return nil, fmt.Errorf("analyze skill gaps: %w", err)
	}
	return &out, nil
}

func (s *GeminiService) generateJSON(ctx context.Context, model, prompt string, schema *genai.Schema, out any) error {
	resp, err := s.GenerateContent(ctx, model, prompt, schema)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAdvisory, err)
	}
	return decodePayload(resp.Text(), schema, out)
}

// GenerateContent calls the model with retries and a circuit breaker. A
// non-nil schema switches the model into JSON mode.
func (s *GeminiService) GenerateContent(ctx context.Context, model, prompt string, schema *genai.Schema) (*genai.GenerateContentResponse, error) {
	if model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	if err := s.allowRequest(); err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0.2)),
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}
	if schema != nil {
		genConfig.ResponseMIMEType = "application/json"
		genConfig.ResponseSchema = schema
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.log.Warn("retrying gemini request", "model", model, "attempt", attempt, "max_retries", s.MaxRetries, "delay", delay)

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				s.recordFailure()
				return nil, fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.models.GenerateContent(timeoutCtx, model, genai.Text(prompt), genConfig)
		if err == nil {
			if err := validateGenerateResponse(result); err != nil {
				s.recordFailure()
				return nil, fmt.Errorf("invalid response: %w", err)
			}
			s.recordSuccess()
			return result, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			s.log.Warn("gemini request failed", "model", model, "error", err)
			s.recordFailure()
			return nil, fmt.Errorf("generate content failed: %w", err)
		}
		s.log.Warn("retryable gemini error", "model", model, "attempt", attempt+1, "error", err)
	}

	s.recordFailure()
	return nil, fmt.Errorf("max retries (%d) exceeded for GenerateContent: %w", s.MaxRetries, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}
	return delay
}

// allowRequest rejects calls while the breaker is open. Once the cooldown
// has passed, one trial call is let through; its outcome closes or re-opens
// the breaker.
func (s *GeminiService) allowRequest() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors < s.circuitBreakerMax {
		return nil
	}
	if s.trialInFlight || s.now().Sub(s.openedAt) < s.CircuitCooldown {
		return fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors)
	}
	s.trialInFlight = true
	s.log.Info("gemini circuit breaker half-open, sending trial request")
	return nil
}

func (s *GeminiService) recordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consecutiveErrors++
	s.trialInFlight = false
	if s.consecutiveErrors >= s.circuitBreakerMax {
		s.openedAt = s.now()
	}
}

func (s *GeminiService) recordSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consecutiveErrors = 0
	s.trialInFlight = false
	s.openedAt = time.Time{}
}

func (s *GeminiService) ResetCircuitBreaker() {
	s.recordSuccess()
	s.log.Info("gemini circuit breaker reset")
}

func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consecutiveErrors, s.consecutiveErrors >= s.circuitBreakerMax
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.Code)
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errMsg, "UNAVAILABLE") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func retryableStatus(code int) bool {
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
