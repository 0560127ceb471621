package service

import (
	"context"
	"errors"
	"time"

	"github.com/nestera/savings-api/internal/api/metrics"
	"github.com/nestera/savings-api/internal/core/domain"
	"github.com/nestera/savings-api/internal/core/ports"
)

// AuthService implements registration, login and credential validation on
// top of the credential store, the password hasher and the token service.
type AuthService struct {
	repo   ports.AuthRepository
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(repo ports.AuthRepository, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a new USER account and returns its identity plus a
// freshly issued token. The email duplicate check is advisory only: two
// concurrent registrations can both pass it, so the store's uniqueness
// constraint is the final authority and its conflict surfaces as
// domain.ErrUserExists as well.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (domain.Identity, string, error) {
	if email == "" || password == "" {
		return domain.Identity{}, "", domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return domain.Identity{}, "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.Identity{}, "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.Identity{}, "", err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return domain.Identity{}, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Email)
	if err != nil {
		return domain.Identity{}, "", err
	}

	metrics.RegistrationsTotal.Inc()
	return created.Identity(), token, nil
}

// Login authenticates the credentials and returns a bearer token. An
// unknown email, a record without a stored hash and a hash mismatch are
// deliberately indistinguishable: all three are domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := s.ValidateUser(ctx, email, password)
	if err != nil {
		return "", err
	}
	if identity == nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(identity.ID, identity.Email)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, nil
}

// ValidateUser looks up the credential record and verifies the password.
// A miss of any kind returns (nil, nil); only store failures error.
func (s *AuthService) ValidateUser(ctx context.Context, email, password string) (*domain.Identity, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if user.PasswordHash == "" || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, nil
	}

	identity := user.Identity()
	return &identity, nil
}
