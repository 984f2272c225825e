package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CareerPath struct {
	Base
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User             *User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CurrentRole      *string        `gorm:"type:text" json:"currentRole"`
	TargetRole       string         `gorm:"type:text;not null" json:"targetRole"`
	Industry         *string        `gorm:"type:text" json:"industry"`
	Steps            datatypes.JSON `json:"steps"`
	Timeline         datatypes.JSON `json:"timeline"`
	SkillGaps        datatypes.JSON `json:"skillGaps"`
	LearningPlan     datatypes.JSON `json:"learningPlan"`
	Progress         int            `gorm:"default:0" json:"progress"`
	EnrichmentStatus string         `gorm:"type:varchar(20);default:pending" json:"enrichmentStatus"`
}

func (p *CareerPath) TableName() string {
	return "career_paths"
}

func (p CareerPath) OwnerID() uuid.UUID { return p.UserID }
