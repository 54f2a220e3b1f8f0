package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/repo/persistent"
	"github.com/AndreiVed/Social-Media-API/pkg/jwt"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const blacklistKeyPrefix = "token:blacklist:"

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthUseCase interface {
	Register(email, password string) (*entity.User, error)
	Login(email, password string) (*entity.User, *TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	Logout(refreshToken string) error
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	jwtService  *jwt.Service
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	redisClient *redis.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Register creates the account and its profile as one unit; a user without a
// profile is never observable.
func (uc *authUseCase) Register(email, password string) (*entity.User, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("user with this email %w", ErrAlreadyExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.CreateWithProfile(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("user with this email %w", ErrAlreadyExists)
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, *TokenPair, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return user, tokens, nil
}

func (uc *authUseCase) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", ErrUnauthorized)
	}

	blacklisted, err := uc.isBlacklisted(claims.ID)
	if err != nil {
		uc.logger.Error("Failed to check token blacklist: %v", err)
		return nil, fmt.Errorf("failed to refresh token")
	}
	if blacklisted {
		return nil, fmt.Errorf("refresh token revoked: %w", ErrUnauthorized)
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", ErrUnauthorized)
	}

	return uc.issueTokens(user)
}

// Logout blacklists the refresh token's JTI in redis until the token would
// have expired on its own.
func (uc *authUseCase) Logout(refreshToken string) error {
	if refreshToken == "" {
		return fmt.Errorf("refresh token is required: %w", ErrValidation)
	}

	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return fmt.Errorf("invalid refresh token: %w", ErrValidation)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	ctx := context.Background()
	if err := uc.redisClient.Set(ctx, blacklistKeyPrefix+claims.ID, "1", ttl).Err(); err != nil {
		uc.logger.Error("Failed to blacklist token: %v", err)
		return fmt.Errorf("failed to logout")
	}

	return nil
}

func (uc *authUseCase) issueTokens(user *entity.User) (*TokenPair, error) {
	access, err := uc.jwtService.GenerateToken(user.ID, user.Role())
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return nil, fmt.Errorf("failed to generate token")
	}

	refresh, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role())
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return nil, fmt.Errorf("failed to generate token")
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (uc *authUseCase) isBlacklisted(jti string) (bool, error) {
	ctx := context.Background()
	_, err := uc.redisClient.Get(ctx, blacklistKeyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
