package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Skill struct {
	Base
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User      *User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Category  *string        `gorm:"type:text" json:"category"` // technical, soft, industry
	Level     int            `gorm:"not null" json:"level"`     // 1-10
	Validated bool           `gorm:"default:false" json:"validated"`
	Evidence  datatypes.JSON `json:"evidence"`
}

func (s *Skill) TableName() string {
	return "skills"
}

func (s Skill) OwnerID() uuid.UUID { return s.UserID }
