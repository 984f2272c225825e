package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrichment states for records that are augmented by the advisory service.
const (
	EnrichmentPending   = "pending"
	EnrichmentCompleted = "completed"
	EnrichmentFailed    = "failed"
	EnrichmentSkipped   = "skipped"
)

type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Owned is implemented by every record that belongs to a user.
type Owned interface {
	OwnerID() uuid.UUID
}

// All lists every table in migration order.
func All() []any {
	return []any{
		&User{},
		&Assessment{},
		&Resume{},
		&Interview{},
		&CareerPath{},
		&Skill{},
		&Goal{},
		&Recommendation{},
		&Session{},
	}
}
