package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"parishledger/internal/domain"
)

type jwtService interface {
	GenerateToken(username string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   jwtService
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Signup creates an office account. Passwords are stored as bcrypt hashes
// only.
func (s *Service) Signup(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || len(password) < 6 {
		return nil, ErrValidation
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		// The unique index closes the race the existence check leaves open.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *Service) issue(u *domain.User) (*LoginResult, error) {
	token, err := s.jwt.GenerateToken(u.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, AccessToken: token}, nil
}
