package service

import (
	"context"
	"errors"
	"time"

	"github.com/recipenest/recipenest-go/internal/crypto"
	"github.com/recipenest/recipenest-go/internal/model"
	"github.com/recipenest/recipenest-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameTaken      = errors.New("username already taken")
)

// dummyHash is a valid Argon2id digest of a throwaway password. Login
// verifies against it when the username does not exist so the unknown-user
// and wrong-password paths take comparable time.
const dummyHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$L9tAOHUj7XNuJcpTSOBZ0IW0HgIKYbXNJxCYXjuzr5w"

// AuthService handles registration and login.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account with an empty saved-recipes list.
// Registration does not issue a token; login is a separate step.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if req.Username == "" {
		return model.RegisterResponse{}, ErrUsernameRequired
	}
	if req.Password == "" {
		return model.RegisterResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Username: req.Username,
		AuthHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.RegisterResponse{}, ErrUsernameTaken
		}
		return model.RegisterResponse{}, err
	}
	user.CreatedAt = time.Now().UTC()

	return model.RegisterResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Login authenticates a user and returns a signed token plus the user ID.
// An unknown username and a wrong password report the same error so the
// response does not reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_, _ = crypto.VerifyPassword(req.Password, dummyHash)
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Token:  token,
		UserID: user.ID,
	}, nil
}
