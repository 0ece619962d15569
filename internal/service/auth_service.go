package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"

	"devconnector/internal/models"
	"devconnector/internal/observability"
	"devconnector/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid credentials"

// RegisterInput is the body of POST /api/users.
type RegisterInput struct {
	Name     string `json:"name" validate:"notblank" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6" msg:"Please enter a password with 6 or more characters"`
}

// LoginInput is the body of POST /api/auth.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

// AuthService registers users, checks credentials and issues tokens.
type AuthService struct {
	users  repository.UserRepository
	tokens *TokenIssuer
}

func NewAuthService(users repository.UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates the account and returns a token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewConflictError("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
		Avatar:   GravatarURL(email),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	observability.Logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return s.issue(user.ID)
}

// Login checks the credentials and returns a token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return "", err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		observability.AuthFailures.WithLabelValues("invalid_credentials").Inc()
		return "", models.NewFieldErrors(models.FieldError{Msg: invalidCredentials})
	}
	return s.issue(user.ID)
}

// CurrentUser returns the authenticated user.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) issue(userID uint) (string, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GravatarURL returns the protocol-relative Gravatar image URL for email.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(normalizeEmail(email)))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
