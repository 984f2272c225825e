package repository

import (
	"context"

	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedRepository is the record store for one per-user collection.
type OwnedRepository[T model.Owned] struct {
	db *gorm.DB
}

func NewOwnedRepository[T model.Owned](db *gorm.DB) *OwnedRepository[T] {
	return &OwnedRepository[T]{db}
}

func NewAssessmentRepository(db *gorm.DB) *OwnedRepository[model.Assessment] {
	return NewOwnedRepository[model.Assessment](db)
}

func NewResumeRepository(db *gorm.DB) *OwnedRepository[model.Resume] {
	return NewOwnedRepository[model.Resume](db)
}

func NewInterviewRepository(db *gorm.DB) *OwnedRepository[model.Interview] {
	return NewOwnedRepository[model.Interview](db)
}

func NewCareerPathRepository(db *gorm.DB) *OwnedRepository[model.CareerPath] {
	return NewOwnedRepository[model.CareerPath](db)
}

func NewSkillRepository(db *gorm.DB) *OwnedRepository[model.Skill] {
	return NewOwnedRepository[model.Skill](db)
}

func NewGoalRepository(db *gorm.DB) *OwnedRepository[model.Goal] {
	return NewOwnedRepository[model.Goal](db)
}

func NewRecommendationRepository(db *gorm.DB) *OwnedRepository[model.Recommendation] {
	return NewOwnedRepository[model.Recommendation](db)
}

func (r *OwnedRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// FindByID returns gorm.ErrRecordNotFound when no row matches.
func (r *OwnedRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByOwner lists the owner's records, most recently touched first. It
// returns an empty slice, never an error, when the owner has none.
func (r *OwnedRepository[T]) FindByOwner(ctx context.Context, userID uuid.UUID) ([]T, error) {
	recs := make([]T, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Update applies a partial update keyed by column name and always bumps
// updated_at. The refreshed row is returned.
func (r *OwnedRepository[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*T, error) {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(withUpdatedAt(fields))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *OwnedRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
