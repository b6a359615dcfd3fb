package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
	repo "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/postgresql"
	utils "github.com/ananyakumar2005/ucs503p-202526odd-team-void/pkg"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

type AuthService struct {
	db       *sql.DB
	repos    repo.Factory
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(db *sql.DB, repos repo.Factory, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		db:       db,
		repos:    repos,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, input entity.RegisterInput) (*entity.LoginResponse, error) {
	users := s.repos.Users(s.db)

	// The DB UNIQUE constraint is the real guard; this pre-check just gives
	// a friendly error for the common case.
	_, err := users.GetByUsername(ctx, input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.loginResponse(user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.LoginResponse, error) {
	user, err := s.repos.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.loginResponse(user)
}

func (s *AuthService) loginResponse(user *entity.User) (*entity.LoginResponse, error) {
	token, err := utils.GenerateToken(user, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Token: token,
		User: entity.UserResp{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}
