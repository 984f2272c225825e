package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fadilmartias/career-coach/internal/config"
)

func TestRedisSessionStorageIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	s, err := NewRedisSessionStorage(context.Background(), &config.SessionConfig{
		RedisAddr:   addr,
		RedisPrefix: "career_coach:test:" + t.Name() + ":",
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer s.Close()
	defer s.Reset()

	if err := s.Set("tok", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get("tok")
	if err != nil || string(got) != "v" {
		t.Fatalf("get: got=%q err=%v", got, err)
	}
	if err := s.Delete("tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := s.Get("tok"); got != nil {
		t.Fatalf("expected nil after delete, got=%q", got)
	}
}
