package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateSkillRequest struct {
	UserID    *uuid.UUID      `json:"userId"`
	Name      string          `json:"name" validate:"required,max=100"`
	Category  *string         `json:"category" validate:"omitempty,max=100"`
	Level     int             `json:"level" validate:"required,min=1,max=10"`
	Validated *bool           `json:"validated"`
	Evidence  json.RawMessage `json:"evidence,omitempty"`
}

type UpdateSkillRequest struct {
	Name      *string         `json:"name" validate:"omitempty,min=1,max=100"`
	Category  *string         `json:"category" validate:"omitempty,max=100"`
	Level     *int            `json:"level" validate:"omitempty,min=1,max=10"`
	Validated *bool           `json:"validated"`
	Evidence  json.RawMessage `json:"evidence,omitempty"`
}

func (r *UpdateSkillRequest) Fields() map[string]any {
	f := fieldSet{}
	f.str("name", r.Name)
	f.str("category", r.Category)
	f.integer("level", r.Level)
	f.boolean("validated", r.Validated)
	f.json("evidence", r.Evidence)
	return f
}

type SkillGapRequest struct {
	TargetRole string  `json:"targetRole" validate:"required,max=200"`
	Industry   *string `json:"industry" validate:"omitempty,max=200"`
}
