package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	repository "github.com/Chimelu/hafak-surgicals-backend/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MessageInvalidCredentials = "Invalid credentials"
	MessageTooManyAttempts    = "Too many login attempts. Please try again later."
)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type authService struct {
	repo        repository.UserRepository
	rateLimiter repository.RateLimitRepository
	jwtKey      []byte
	expiry      time.Duration
}

// NewAuthService builds the login flow. rateLimiter may be nil when no redis
// instance is configured.
func NewAuthService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, jwtKey []byte, expiry time.Duration) AuthService {
	return &authService{
		repo:        repo,
		rateLimiter: rateLimiter,
		jwtKey:      jwtKey,
		expiry:      expiry,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	if s.rateLimiter != nil {
		allowed, _, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Username)
		if err != nil {
			logger.Warn("Login rate limit check failed, continuing", slog.String("error", err.Error()))
		} else if !allowed {
			return nil, appErrors.TooManyRequestsError(MessageTooManyAttempts).WithDetail("retry after " + strconv.Itoa(retryAfter) + "s")
		}
	}

	user, err := s.repo.GetUserByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.UnauthorizedError(MessageInvalidCredentials)
		}
		return nil, appErrors.DatabaseError("Failed to authenticate").WithError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, appErrors.UnauthorizedError(MessageInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, appErrors.InternalError("Failed to issue token").WithError(err)
	}

	logger.Info("User logged in", slog.String("userID", user.ID.String()), slog.String("role", string(user.Role)))

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.expiry.Seconds()),
		User:      user,
	}, nil
}

func (s *authService) Me(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {

	now := time.Now()

	claims := &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
}
