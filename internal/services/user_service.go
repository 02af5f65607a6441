package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"cinema-catalog/internal/config"
	"cinema-catalog/internal/crud"
	"cinema-catalog/internal/models"
	"cinema-catalog/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrLoginIncorrect covers both unknown email and wrong password so the
// response does not reveal which one failed.
var ErrLoginIncorrect = errors.New("login is incorrect")

// ErrEmailTaken is returned on registration with an already used email.
var ErrEmailTaken = errors.New("email is already registered")

// AuthToken is a signed access token with its expiry.
type AuthToken struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

type UserRead struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type UserService interface {
	Register(ctx context.Context, email, password string) (*AuthToken, error)
	Login(ctx context.Context, email, password string) (*AuthToken, error)
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
	List(ctx context.Context, p crud.Pagination) ([]UserRead, int64, error)
}

type userService struct {
	users  repository.UserRepository
	cfg    config.JWTConfig
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, cfg config.JWTConfig, logger *logrus.Logger) UserService {
	return &userService{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *userService) Register(ctx context.Context, email, password string) (*AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, crud.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithField("email", email).Info("User registered")
	return s.issueToken(user)
}

func (s *userService) Login(ctx context.Context, email, password string) (*AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, ErrLoginIncorrect
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrLoginIncorrect
	}

	return s.issueToken(user)
}

func (s *userService) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	return s.users.SetAdmin(ctx, strings.ToLower(strings.TrimSpace(email)), isAdmin)
}

func (s *userService) List(ctx context.Context, p crud.Pagination) ([]UserRead, int64, error) {
	users, total, err := s.users.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	out := make([]UserRead, 0, len(users))
	for _, u := range users {
		out = append(out, UserRead{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin})
	}
	return out, total, nil
}

// issueToken builds and signs an HS256 JWT carrying the user's identity
// and admin claim.
func (s *userService) issueToken(user *models.User) (*AuthToken, error) {
	exp := time.Now().UTC().Add(s.cfg.TTL)
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
		"exp":     exp.Unix(),
		"iat":     time.Now().UTC().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, err
	}

	return &AuthToken{Token: signed, Expiration: exp}, nil
}
