package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserUsecase struct {
	users *repository.UserRepository
}

func NewUserUsecase(users *repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (uc *UserUsecase) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to fetch user", err)
	}
	return user, nil
}

// Update applies a profile change. A new email or username is checked for
// uniqueness and a new password is hashed.
func (uc *UserUsecase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.User, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != current.Email {
			if err := ensureEmailFree(ctx, uc.users, email); err != nil {
				return nil, err
			}
		}
		fields["email"] = email
	}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username != current.Username {
			if err := ensureUsernameFree(ctx, uc.users, username); err != nil {
				return nil, err
			}
		}
		fields["username"] = username
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, apperr.Internal("Failed to update user", err)
		}
		fields["password"] = hash
	}

	user, err := uc.users.Update(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to update user", err)
	}
	return user, nil
}
