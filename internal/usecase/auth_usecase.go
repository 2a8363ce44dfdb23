package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pombal/internal/domain/entities"
	"pombal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrWrongCredentials   = errors.New("wrong email or password")
)

const minPasswordLength = 8

// IAuthUseCase exposes account registration, login and profile lookup.

type IAuthUseCase interface {
	Register(ctx context.Context, email, name, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	Profile(ctx context.Context, userID string) (entities.User, error)
}

type AuthUseCase struct {
	repo   interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
	logger *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository, tokens interfaces.ITokenIssuer, logger *zap.Logger) *AuthUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUseCase{repo: repo, tokens: tokens, logger: logger}
}

func (u *AuthUseCase) Register(ctx context.Context, email, name, password string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return entities.User{}, ErrInvalidPassword
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	u.logger.Info("user registered", zap.String("user_id", created.ID))
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.User{}, "", ErrInvalidEmail
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" {
		return entities.User{}, "", ErrWrongCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.User{}, "", ErrWrongCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return entities.User{}, "", err
	}
	u.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, token, nil
}

func (u *AuthUseCase) Profile(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
