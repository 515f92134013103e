package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/apperr"
	"github.com/shahmilc/LittleLemonAPI/repository"
	"github.com/shahmilc/LittleLemonAPI/utils"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.Validation("username is required")
	}
	if password == "" {
		return nil, apperr.Validation("password is required")
	}

	count, err := s.userRepo.CountByUsername(ctx, username)
	if err != nil {
		return nil, wrapStore(err, "user not found")
	}
	if count > 0 {
		return nil, apperr.Validation("username already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &entity.User{
		Username: username,
		Email:    strings.TrimSpace(email),
		Password: string(hashed),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, wrapStore(err, "user not found")
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapStore(err, "user not found")
	}
	return user, nil
}
