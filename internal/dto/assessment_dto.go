package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateAssessmentRequest struct {
	UserID *uuid.UUID      `json:"userId"`
	Type   string          `json:"type" validate:"required,oneof=career skill personality"`
	Data   json.RawMessage `json:"data,omitempty" validate:"required"`
}

type UpdateAssessmentRequest struct {
	Type        *string         `json:"type" validate:"omitempty,oneof=career skill personality"`
	Data        json.RawMessage `json:"data,omitempty"`
	Results     json.RawMessage `json:"results,omitempty"`
	Score       *int            `json:"score" validate:"omitempty,min=0,max=100"`
	CompletedAt *time.Time      `json:"completedAt"`
}

func (r *UpdateAssessmentRequest) Fields() map[string]any {
	f := fieldSet{}
	f.str("type", r.Type)
	f.json("data", r.Data)
	f.json("results", r.Results)
	f.integer("score", r.Score)
	f.timestamp("completed_at", r.CompletedAt)
	return f
}
