package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ownedStore wraps a record collection with the owner checks every handler
// needs: missing records are 404 and other users' records are 403.
type ownedStore[T model.Owned] struct {
	repo   *repository.OwnedRepository[T]
	entity string
}

func (s ownedStore[T]) get(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.storeError(err, "fetch")
	}
	if (*rec).OwnerID() != userID {
		return nil, apperr.Forbidden("Access denied")
	}
	return rec, nil
}

func (s ownedStore[T]) list(ctx context.Context, userID uuid.UUID) ([]T, error) {
	recs, err := s.repo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, s.storeError(err, "list")
	}
	return recs, nil
}

func (s ownedStore[T]) create(ctx context.Context, rec *T) error {
	if err := s.repo.Create(ctx, rec); err != nil {
		return s.storeError(err, "create")
	}
	return nil
}

func (s ownedStore[T]) update(ctx context.Context, id uuid.UUID, fields map[string]any) (*T, error) {
	rec, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, s.storeError(err, "update")
	}
	return rec, nil
}

func (s ownedStore[T]) updateOwned(ctx context.Context, userID, id uuid.UUID, fields map[string]any) (*T, error) {
	if _, err := s.get(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.update(ctx, id, fields)
}

func (s ownedStore[T]) remove(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storeError(err, "delete")
	}
	return nil
}

func (s ownedStore[T]) storeError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(s.entity + " not found")
	}
	return apperr.Internal(fmt.Sprintf("Failed to %s %s", op, s.entity), err)
}

// checkBodyOwner rejects a body userId that names someone other than the
// session user.
func checkBodyOwner(sessionUser uuid.UUID, bodyUser *uuid.UUID) error {
	if bodyUser != nil && *bodyUser != uuid.Nil && *bodyUser != sessionUser {
		return apperr.Forbidden("Access denied")
	}
	return nil
}

func toJSON(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// roundScore converts a model score into the stored 0-100 integer.
func roundScore(v float64) int {
	s := int(math.Round(v))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
