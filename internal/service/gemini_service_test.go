package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/logger"
	"google.golang.org/genai"
)

type scriptedReply struct {
	text string
	err  error
}

type fakeGenerator struct {
	mu      sync.Mutex
	replies []scriptedReply
	calls   int
	models  []string
	configs []*genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, _ []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.models = append(f.models, model)
	f.configs = append(f.configs, cfg)
	idx := f.calls
	if idx >= len(f.replies) {
		idx = len(f.replies) - 1
	}
	f.calls++
	r := f.replies[idx]
	if r.err != nil {
		return nil, r.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(r.text, genai.RoleModel)}},
	}, nil
}

func newTestGemini(gen *fakeGenerator) *GeminiService {
	s := newGeminiService(gen, &config.GeminiConfig{
		FastModel:       "fast",
		ProModel:        "pro",
		RequestTimeout:  5 * time.Second,
		MaxRetries:      2,
		CircuitCooldown: time.Minute,
	}, logger.Nop())
	s.BaseDelay = time.Millisecond
	s.MaxDelay = 5 * time.Millisecond
	return s
}

const careerFitJSON = `{
	"overallScore": 82,
	"recommendedRoles": ["Data Engineer", "Analytics Engineer"],
	"strengths": ["SQL"],
	"areasForImprovement": ["Cloud"],
	"careerSuggestions": ["Get certified"]
}`

func TestGeminiAnalyzeCareerFit(t *testing.T) {
	gen := &fakeGenerator{replies: []scriptedReply{{text: careerFitJSON}}}
	s := newTestGemini(gen)

	got, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{Skills: []string{"SQL"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OverallScore != 82 || len(got.RecommendedRoles) != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if gen.models[0] != "fast" {
		t.Fatalf("career fit model: got=%s want=fast", gen.models[0])
	}
	cfg := gen.configs[0]
	if cfg.ResponseMIMEType != "application/json" || cfg.ResponseSchema != careerFitSchema {
		t.Fatalf("request is not in JSON schema mode: %+v", cfg)
	}
}

func TestGeminiAnalyzeResumeUsesProModel(t *testing.T) {
	body := "```json\n" + `{"score": 70, "analysis": {"strengths": ["a"], "weaknesses": ["b"], "suggestions": ["c"]}, "suggestions": ["d"]}` + "\n```"
	gen := &fakeGenerator{replies: []scriptedReply{{text: body}}}
	s := newTestGemini(gen)

	got, err := s.AnalyzeResume(context.Background(), "Go developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 70 || got.Analysis.Weaknesses[0] != "b" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if gen.models[0] != "pro" {
		t.Fatalf("resume model: got=%s want=pro", gen.models[0])
	}
}

func TestGeminiRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: "   "},
		{name: "not json", text: "I think you would make a great engineer"},
		{name: "score out of range", text: `{"overallScore": 140, "recommendedRoles": [], "strengths": [], "areasForImprovement": [], "careerSuggestions": []}`},
		{name: "missing field", text: `{"overallScore": 40}`},
		{name: "too many roles", text: `{"overallScore": 40, "recommendedRoles": ["a","b","c","d","e","f"], "strengths": [], "areasForImprovement": [], "careerSuggestions": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestGemini(&fakeGenerator{replies: []scriptedReply{{text: tt.text}}})
			_, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{})
			if !errors.Is(err, ErrAdvisory) {
				t.Fatalf("got=%v want error wrapping ErrAdvisory", err)
			}
		})
	}
}

func TestGeminiInterviewQuestionEnum(t *testing.T) {
	bad := `[{"question": "Why us?", "category": "Trivia", "difficulty": "Easy"}]`
	s := newTestGemini(&fakeGenerator{replies: []scriptedReply{{text: bad}}})
	if _, err := s.GenerateInterviewQuestions(context.Background(), "Engineer", ""); !errors.Is(err, ErrAdvisory) {
		t.Fatalf("got=%v want error wrapping ErrAdvisory", err)
	}

	good := `[{"question": "Why us?", "category": "Culture Fit", "difficulty": "Easy"}]`
	s = newTestGemini(&fakeGenerator{replies: []scriptedReply{{text: good}}})
	qs, err := s.GenerateInterviewQuestions(context.Background(), "Engineer", "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 || qs[0].Category != CategoryCultureFit {
		t.Fatalf("unexpected questions: %+v", qs)
	}
}

func TestGeminiRetriesTransientErrors(t *testing.T) {
	gen := &fakeGenerator{replies: []scriptedReply{
		{err: errors.New("read tcp: connection reset by peer")},
		{text: careerFitJSON},
	}}
	s := newTestGemini(gen)

	if _, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("unexpected call count: got=%d want=2", gen.calls)
	}
	if n, open := s.GetCircuitBreakerStatus(); n != 0 || open {
		t.Fatalf("breaker not reset after success: n=%d open=%v", n, open)
	}
}

func TestGeminiCircuitBreakerOpens(t *testing.T) {
	gen := &fakeGenerator{replies: []scriptedReply{{err: errors.New("permission denied")}}}
	s := newTestGemini(gen)

	for i := 0; i < s.circuitBreakerMax; i++ {
		if _, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{}); !errors.Is(err, ErrAdvisory) {
			t.Fatalf("call %d: got=%v want ErrAdvisory", i, err)
		}
	}
	if _, open := s.GetCircuitBreakerStatus(); !open {
		t.Fatalf("expected breaker to be open")
	}

	before := gen.calls
	if _, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{}); !errors.Is(err, ErrAdvisory) {
		t.Fatalf("got=%v want ErrAdvisory", err)
	}
	if gen.calls != before {
		t.Fatalf("open breaker still reached the provider")
	}

	s.ResetCircuitBreaker()
	if _, open := s.GetCircuitBreakerStatus(); open {
		t.Fatalf("expected breaker to be closed after reset")
	}
}

func TestGeminiCircuitBreakerHalfOpens(t *testing.T) {
	denied := scriptedReply{err: errors.New("permission denied")}
	gen := &fakeGenerator{replies: []scriptedReply{denied, denied, denied, denied, denied, denied, {text: careerFitJSON}}}
	s := newTestGemini(gen)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	for i := 0; i < s.circuitBreakerMax; i++ {
		s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{})
	}
	if _, open := s.GetCircuitBreakerStatus(); !open {
		t.Fatalf("expected breaker to be open")
	}

	clock = clock.Add(s.CircuitCooldown - time.Second)
	if _, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{}); err == nil || gen.calls != 5 {
		t.Fatalf("breaker let a call through before the cooldown: calls=%d err=%v", gen.calls, err)
	}

	// a failed trial re-opens the breaker for another cooldown
	clock = clock.Add(2 * time.Second)
	if _, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{}); err == nil || gen.calls != 6 {
		t.Fatalf("trial call: calls=%d err=%v", gen.calls, err)
	}
	if _, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{}); err == nil || gen.calls != 6 {
		t.Fatalf("breaker should re-open after a failed trial: calls=%d err=%v", gen.calls, err)
	}

	clock = clock.Add(s.CircuitCooldown)
	got, err := s.AnalyzeCareerFit(context.Background(), CareerAssessmentInput{})
	if err != nil || gen.calls != 7 {
		t.Fatalf("trial call after cooldown: calls=%d err=%v", gen.calls, err)
	}
	if got.OverallScore != 82 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if n, open := s.GetCircuitBreakerStatus(); n != 0 || open {
		t.Fatalf("successful trial should close the breaker: n=%d open=%v", n, open)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: context.DeadlineExceeded, want: false},
		{err: context.Canceled, want: false},
		{err: errors.New("unexpected EOF"), want: true},
		{err: errors.New("Error 429, Status: RESOURCE_EXHAUSTED"), want: true},
		{err: errors.New("invalid argument"), want: false},
	}
	for _, tt := range tests {
		if got := isRetryableError(tt.err); got != tt.want {
			t.Fatalf("isRetryableError(%v): got=%v want=%v", tt.err, got, tt.want)
		}
	}
}
