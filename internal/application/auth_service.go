package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/danuartha/auth-service/internal/domain/entity"
	repo "github.com/danuartha/auth-service/internal/domain/repository"
	"github.com/danuartha/auth-service/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
)

const profileCacheTTL = 5 * time.Minute

// Service composes the credential store, password hasher, and token
// issuer. Redis is optional; when nil, profile lookups always hit the store.
type Service struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewService(repo repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, JWT: jwt, Redis: rdb, Logger: logger}
}

func profileKey(userID int64) string {
	return "user:profile:" + strconv.FormatInt(userID, 10)
}

// Register hashes the password and persists a new user. The returned user
// carries the store-assigned id.
func (s *Service) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CheckPasswordHash(u.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// ValidateToken checks signature and expiry only; the store is not consulted.
func (s *Service) ValidateToken(token string) (int64, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

type profileCacheEntry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetProfile loads a user by id through a short-lived redis cache. A user
// deleted after token issuance yields ErrUserNotFound.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	if s.Redis != nil {
		var cached profileCacheEntry
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, profileKey(userID), &cached); err == nil && ok {
			return &entity.User{ID: userID, Name: cached.Name, Email: cached.Email}, nil
		}
	}

	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	if s.Redis != nil {
		entry := profileCacheEntry{Name: u.Name, Email: u.Email}
		if err := helpers.RedisSetJSON(ctx, s.Redis, profileKey(u.ID), entry, profileCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("profile cache write failed")
		}
	}
	return u, nil
}
