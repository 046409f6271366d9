package service

import (
	"acceluni_backend/internal/config"
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/util"
	"acceluni_backend/pkg/logger"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionStore 记录已撤销的 token
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthService struct {
	UserRepo *repository.UserRepository
	Sessions SessionStore
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, sessions SessionStore, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Sessions: sessions,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, util.NewValidationError("name and email are required")
	}
	if len(password) < 8 {
		return nil, util.NewValidationError("password must be at least 8 characters")
	}

	_, err := s.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.WrapInternal("lookup user", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, util.WrapInternal("hash password", err)
	}
	user := &model.User{Name: name, Email: email, Password: string(hashedPassword), Role: model.Learner}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, util.WrapInternal("create user", err)
	}
	logger.Log.Info("user registered", zap.Uint("userID", user.ID))
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, _, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, util.WrapInternal("sign token", err)
	}
	return token, user, nil
}

// Logout 撤销 token 直到其自然过期
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if claims == nil || claims.ID == "" {
		return util.NewAuthenticationError("authentication required")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.Sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		return util.WrapInternal("revoke session", err)
	}
	return nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("user")
	}
	if err != nil {
		return nil, util.WrapInternal("load user", err)
	}
	return user, nil
}
