package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Resume struct {
	Base
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User             *User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Title            string         `gorm:"type:text;not null" json:"title"`
	Content          string         `gorm:"type:text;not null" json:"content"`
	Analysis         datatypes.JSON `json:"analysis"`
	Score            *int           `json:"score"`
	Suggestions      datatypes.JSON `json:"suggestions"`
	EnrichmentStatus string         `gorm:"type:varchar(20);default:pending" json:"enrichmentStatus"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

func (r Resume) OwnerID() uuid.UUID { return r.UserID }
