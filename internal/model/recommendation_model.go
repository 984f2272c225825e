package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Recommendation struct {
	Base
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User        *User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Type        string         `gorm:"type:text;not null" json:"type"` // course, job, skill, networking
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	URL         *string        `gorm:"type:text" json:"url"`
	Metadata    datatypes.JSON `json:"metadata"`
	Priority    int            `gorm:"default:5" json:"priority"` // 1-10
	Completed   bool           `gorm:"default:false" json:"completed"`
}

func (r *Recommendation) TableName() string {
	return "recommendations"
}

func (r Recommendation) OwnerID() uuid.UUID { return r.UserID }
