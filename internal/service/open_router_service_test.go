package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/tidwall/gjson"
)

func newTestOpenRouter(t *testing.T, handler http.HandlerFunc) *OpenRouterService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	s, err := NewOpenRouterService(&config.OpenRouterConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test/model",
	}, 5*time.Second, 0, logger.Nop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return s
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
	})
	return string(b)
}

func TestOpenRouterAnalyzeSkillGaps(t *testing.T) {
	reply := `{
		"analysis": {"strengthAreas": ["SQL"], "gapAreas": ["ML"], "recommendations": ["Take a course"]},
		"skillGaps": [{"skill": "Python", "importance": "Critical", "difficulty": "Intermediate"}],
		"learningPath": [{"phase": "Foundations", "skills": ["Python"], "duration": "2 months"}]
	}`
	var gotBody string
	s := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", got)
		}
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatReply(reply))
	})

	got, err := s.AnalyzeSkillGaps(context.Background(), []SkillSnapshot{{Name: "SQL", Category: "Technical", Level: 6}}, "Data Scientist", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.SkillGaps) != 1 || got.SkillGaps[0].Skill != "Python" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if m := gjson.Get(gotBody, "model").String(); m != "test/model" {
		t.Fatalf("model: got=%s want=test/model", m)
	}
	if typ := gjson.Get(gotBody, "response_format.json_schema.schema.properties.skillGaps.type").String(); typ != "array" {
		t.Fatalf("schema not forwarded, skillGaps type=%q", typ)
	}
}

func TestOpenRouterErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "provider error", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key"}}`},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "malformed content", status: http.StatusOK, body: chatReply("not json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := s.AnalyzeResume(context.Background(), "resume")
			if !errors.Is(err, ErrAdvisory) {
				t.Fatalf("got=%v want error wrapping ErrAdvisory", err)
			}
		})
	}
}

func TestNewOpenRouterServiceRequiresKey(t *testing.T) {
	if _, err := NewOpenRouterService(&config.OpenRouterConfig{}, time.Second, 0, logger.Nop()); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}
