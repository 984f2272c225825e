package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AssessmentTypeCareer      = "career"
	AssessmentTypeSkill       = "skill"
	AssessmentTypePersonality = "personality"
)

type Assessment struct {
	Base
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User             *User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Type             string         `gorm:"type:text;not null" json:"type"`
	Data             datatypes.JSON `gorm:"not null" json:"data"`
	Results          datatypes.JSON `json:"results"`
	Score            *int           `json:"score"`
	CompletedAt      *time.Time     `json:"completedAt"`
	EnrichmentStatus string         `gorm:"type:varchar(20);default:pending" json:"enrichmentStatus"`
}

func (a *Assessment) TableName() string {
	return "assessments"
}

func (a Assessment) OwnerID() uuid.UUID { return a.UserID }
