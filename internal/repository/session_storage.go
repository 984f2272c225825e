package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/career-coach/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionStorage keeps fiber sessions in the relational database. It
// satisfies fiber.Storage.
type SessionStorage struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSessionStorage(db *gorm.DB) *SessionStorage {
	return &SessionStorage{db: db, now: time.Now}
}

func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	var sess model.Session
	err := s.db.Where(&model.Session{Token: key}).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if sess.ExpiresAt != nil && !sess.ExpiresAt.After(s.now()) {
		return nil, nil
	}
	return sess.Data, nil
}

func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	sess := model.Session{Token: key, Data: val}
	if exp > 0 {
		expiresAt := s.now().Add(exp)
		sess.ExpiresAt = &expiresAt
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at"}),
	}).Create(&sess).Error
}

func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.db.Where(&model.Session{Token: key}).Delete(&model.Session{}).Error
}

func (s *SessionStorage) Reset() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Session{}).Error
}

func (s *SessionStorage) Close() error {
	return nil
}

// DeleteExpired removes sessions whose expiry has passed and reports how
// many were dropped.
func (s *SessionStorage) DeleteExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at IS NOT NULL AND expires_at <= ?", s.now()).Delete(&model.Session{})
	return res.RowsAffected, res.Error
}
