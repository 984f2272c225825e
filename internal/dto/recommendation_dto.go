package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateRecommendationRequest struct {
	UserID      *uuid.UUID      `json:"userId"`
	Type        string          `json:"type" validate:"required,max=50"`
	Title       string          `json:"title" validate:"required,max=200"`
	Description *string         `json:"description"`
	URL         *string         `json:"url" validate:"omitempty,url"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Priority    *int            `json:"priority" validate:"omitempty,min=1,max=10"`
	Completed   *bool           `json:"completed"`
}

type UpdateRecommendationRequest struct {
	Type        *string         `json:"type" validate:"omitempty,min=1,max=50"`
	Title       *string         `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string         `json:"description"`
	URL         *string         `json:"url" validate:"omitempty,url"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Priority    *int            `json:"priority" validate:"omitempty,min=1,max=10"`
	Completed   *bool           `json:"completed"`
}

func (r *UpdateRecommendationRequest) Fields() map[string]any {
	f := fieldSet{}
	f.str("type", r.Type)
	f.str("title", r.Title)
	f.str("description", r.Description)
	f.str("url", r.URL)
	f.json("metadata", r.Metadata)
	f.integer("priority", r.Priority)
	f.boolean("completed", r.Completed)
	return f
}
