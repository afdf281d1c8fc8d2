// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fakestore/storefront-backend/internal/accounts"
	"github.com/fakestore/storefront-backend/internal/config"
	"github.com/fakestore/storefront-backend/internal/models"
	"github.com/fakestore/storefront-backend/internal/utils"
)

var (
	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

type AuthService struct {
	accounts accounts.Repository
	sessions *SessionService
	cfg      *config.Config
}

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,simple_email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	AcceptTerms     bool   `json:"accept_terms" validate:"eq=true"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required,simple_email"`
	Password   string `json:"password" validate:"required,min=6"`
	RememberMe bool   `json:"remember_me"`
}

type AuthResponse struct {
	User      *models.User    `json:"user"`
	Session   *models.Session `json:"session"`
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"` // in seconds
}

func NewAuthService(accounts accounts.Repository, sessions *SessionService, cfg *config.Config) *AuthService {
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		cfg:      cfg,
	}
}

// Register validates the request rule by rule and creates the account with a
// bcrypt password hash. Duplicate emails (case-insensitive) are rejected
// distinctly from validation failures.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.accounts.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, accounts.ErrNotFound) {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accounts.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return user, nil
}

// Login checks credentials and establishes the session, durable when
// rememberMe is set. Credential failures are reported generically.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.accounts.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	if err := s.sessions.Save(ctx, user.SessionUser(), req.RememberMe); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	session, _ := s.sessions.Current(ctx)

	ttl := s.cfg.JWT.TokenTTL
	if req.RememberMe {
		ttl = s.cfg.JWT.RememberMeTTL
	}
	token, err := utils.GenerateJWT(user.ID, user.Name, user.Email, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		User:      user,
		Session:   session,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: ttl * 3600,
	}, nil
}

// Logout clears the session from both storage locations. Idempotent.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentSession returns the live session, if any.
func (s *AuthService) CurrentSession(ctx context.Context) (*models.Session, bool) {
	return s.sessions.Current(ctx)
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.accounts.FindByID(ctx, id)
}
