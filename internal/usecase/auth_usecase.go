package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

var (
	comparePassword = bcrypt.CompareHashAndPassword

	// dummyHash is compared against when the email is unknown so both login
	// failures cost one bcrypt comparison.
	dummyHash     []byte
	dummyHashOnce sync.Once
)

func unknownUserHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("career-coach-no-such-user"), bcryptCost)
	})
	return dummyHash
}

type AuthUsecase struct {
	users *repository.UserRepository
	log   *logger.Logger
}

func NewAuthUsecase(users *repository.UserRepository, log *logger.Logger) *AuthUsecase {
	return &AuthUsecase{users: users, log: log}
}

// Register creates a user with a hashed password. Email and username must be
// unused.
func (uc *AuthUsecase) Register(ctx context.Context, req dto.SignupRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if err := ensureEmailFree(ctx, uc.users, email); err != nil {
		return nil, err
	}
	if err := ensureUsernameFree(ctx, uc.users, username); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("Signup failed", err)
	}

	user := &model.User{
		Username:  username,
		Email:     email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, apperr.Internal("Signup failed", err)
	}
	uc.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same error.
func (uc *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (*model.User, error) {
	user, err := uc.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = comparePassword(unknownUserHash(), []byte(req.Password))
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return nil, apperr.Internal("Login failed", err)
	}
	if comparePassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func ensureEmailFree(ctx context.Context, users *repository.UserRepository, email string) error {
	_, err := users.FindByEmail(ctx, email)
	if err == nil {
		return apperr.BadRequest("User with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Internal("Failed to check email", err)
	}
	return nil
}

func ensureUsernameFree(ctx context.Context, users *repository.UserRepository, username string) error {
	_, err := users.FindByUsername(ctx, username)
	if err == nil {
		return apperr.BadRequest("Username already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Internal("Failed to check username", err)
	}
	return nil
}
