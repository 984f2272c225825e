package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateCareerPathRequest struct {
	UserID      *uuid.UUID `json:"userId"`
	CurrentRole *string    `json:"currentRole" validate:"omitempty,max=200"`
	TargetRole  string     `json:"targetRole" validate:"required,max=200"`
	Industry    *string    `json:"industry" validate:"omitempty,max=200"`
}

type UpdateCareerPathRequest struct {
	CurrentRole  *string         `json:"currentRole" validate:"omitempty,max=200"`
	TargetRole   *string         `json:"targetRole" validate:"omitempty,min=1,max=200"`
	Industry     *string         `json:"industry" validate:"omitempty,max=200"`
	Progress     *int            `json:"progress" validate:"omitempty,min=0,max=100"`
	Steps        json.RawMessage `json:"steps,omitempty"`
	Timeline     json.RawMessage `json:"timeline,omitempty"`
	SkillGaps    json.RawMessage `json:"skillGaps,omitempty"`
	LearningPlan json.RawMessage `json:"learningPlan,omitempty"`
}

func (r *UpdateCareerPathRequest) Fields() map[string]any {
	f := fieldSet{}
	f.str("current_role", r.CurrentRole)
	f.str("target_role", r.TargetRole)
	f.str("industry", r.Industry)
	f.integer("progress", r.Progress)
	f.json("steps", r.Steps)
	f.json("timeline", r.Timeline)
	f.json("skill_gaps", r.SkillGaps)
	f.json("learning_plan", r.LearningPlan)
	return f
}
