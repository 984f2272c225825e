package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateInterviewRequest struct {
	UserID   *uuid.UUID `json:"userId"`
	JobTitle string     `json:"jobTitle" validate:"required,max=200"`
	Company  *string    `json:"company" validate:"omitempty,max=200"`
	Duration *int       `json:"duration" validate:"omitempty,min=0"`
}

type UpdateInterviewRequest struct {
	JobTitle    *string         `json:"jobTitle" validate:"omitempty,min=1,max=200"`
	Company     *string         `json:"company" validate:"omitempty,max=200"`
	Questions   json.RawMessage `json:"questions,omitempty"`
	Responses   json.RawMessage `json:"responses,omitempty"`
	Feedback    json.RawMessage `json:"feedback,omitempty"`
	Score       *int            `json:"score" validate:"omitempty,min=0,max=100"`
	Duration    *int            `json:"duration" validate:"omitempty,min=0"`
	CompletedAt *time.Time      `json:"completedAt"`
}

func (r *UpdateInterviewRequest) Fields() map[string]any {
	f := fieldSet{}
	f.str("job_title", r.JobTitle)
	f.str("company", r.Company)
	f.json("questions", r.Questions)
	f.json("responses", r.Responses)
	f.json("feedback", r.Feedback)
	f.integer("score", r.Score)
	f.integer("duration", r.Duration)
	f.timestamp("completed_at", r.CompletedAt)
	return f
}

// EvaluateInterviewRequest optionally carries the answers to score; when
// empty the stored responses are used.
type EvaluateInterviewRequest struct {
	Responses []string `json:"responses" validate:"omitempty,dive,max=10000"`
	Duration  *int     `json:"duration" validate:"omitempty,min=0"`
}
