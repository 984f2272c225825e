package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateGoalRequest struct {
	UserID      *uuid.UUID      `json:"userId"`
	Title       string          `json:"title" validate:"required,max=200"`
	Description *string         `json:"description"`
	Category    *string         `json:"category" validate:"omitempty,max=100"`
	TargetDate  *time.Time      `json:"targetDate"`
	Completed   *bool           `json:"completed"`
	Progress    *int            `json:"progress" validate:"omitempty,min=0,max=100"`
	Milestones  json.RawMessage `json:"milestones,omitempty"`
}

type UpdateGoalRequest struct {
	Title       *string         `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string         `json:"description"`
	Category    *string         `json:"category" validate:"omitempty,max=100"`
	TargetDate  *time.Time      `json:"targetDate"`
	Completed   *bool           `json:"completed"`
	Progress    *int            `json:"progress" validate:"omitempty,min=0,max=100"`
	Milestones  json.RawMessage `json:"milestones,omitempty"`
}

func (r *UpdateGoalRequest) Fields() map[string]any {
	f := fieldSet{}
	f.str("title", r.Title)
	f.str("description", r.Description)
	f.str("category", r.Category)
	f.timestamp("target_date", r.TargetDate)
	f.boolean("completed", r.Completed)
	f.integer("progress", r.Progress)
	f.json("milestones", r.Milestones)
	return f
}
