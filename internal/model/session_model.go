package model

import "time"

// Session is the server-side half of a login. Token is the opaque cookie value.
type Session struct {
	Token     string     `gorm:"type:varchar(128);primaryKey"`
	Data      []byte     `gorm:"not null"`
	ExpiresAt *time.Time `gorm:"index"`
}

func (s *Session) TableName() string {
	return "sessions"
}
