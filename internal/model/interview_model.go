package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Interview struct {
	Base
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User             *User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	JobTitle         string         `gorm:"type:text;not null" json:"jobTitle"`
	Company          *string        `gorm:"type:text" json:"company"`
	Questions        datatypes.JSON `gorm:"not null" json:"questions"`
	Responses        datatypes.JSON `json:"responses"`
	Feedback         datatypes.JSON `json:"feedback"`
	Score            *int           `json:"score"`
	Duration         *int           `json:"duration"` // seconds
	CompletedAt      *time.Time     `json:"completedAt"`
	EnrichmentStatus string         `gorm:"type:varchar(20);default:pending" json:"enrichmentStatus"`
}

func (i *Interview) TableName() string {
	return "interviews"
}

func (i Interview) OwnerID() uuid.UUID { return i.UserID }
