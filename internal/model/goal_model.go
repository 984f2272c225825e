package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Goal struct {
	Base
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User        *User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Category    *string        `gorm:"type:text" json:"category"` // career, skill, salary, role
	TargetDate  *time.Time     `json:"targetDate"`
	Completed   bool           `gorm:"default:false" json:"completed"`
	Progress    int            `gorm:"default:0" json:"progress"`
	Milestones  datatypes.JSON `json:"milestones"`
}

func (g *Goal) TableName() string {
	return "goals"
}

func (g Goal) OwnerID() uuid.UUID { return g.UserID }
