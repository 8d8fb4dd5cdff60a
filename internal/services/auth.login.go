package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
	sharedhash "github.com/joshuarp/image-derivative-api/internal/shared/hash"
	sharedjwt "github.com/joshuarp/image-derivative-api/internal/shared/jwt"
)

const adminStatusActive = "active"

type AuthLoginRepository interface {
	GetUserAuthByEmail(ctx context.Context, email string) (domain.UserAuth, error)
}

// AuthLoginOptions.TokenTTL must match the token manager's TTL so the
// reported expiry is the one signed into the token.
type AuthLoginOptions struct {
	TokenTTL time.Duration
}

type AuthLoginService struct {
	repository   AuthLoginRepository
	hasher       sharedhash.Hasher
	tokenManager sharedjwt.TokenManager
	opts         AuthLoginOptions
	now          func() time.Time
}

func NewAuthLoginService(
	repository AuthLoginRepository,
	hasher sharedhash.Hasher,
	tokenManager sharedjwt.TokenManager,
	opts AuthLoginOptions,
) *AuthLoginService {
	return &AuthLoginService{
		repository:   repository,
		hasher:       hasher,
		tokenManager: tokenManager,
		opts:         opts,
		now:          time.Now,
	}
}

func (s *AuthLoginService) Login(ctx context.Context, email, password string) (vo.AuthLogin, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" || strings.TrimSpace(password) == "" {
		return vo.AuthLogin{}, vo.ErrInvalidCredentials
	}

	user, err := s.repository.GetUserAuthByEmail(ctx, normalizedEmail)
	if err != nil {
		if errors.Is(err, vo.ErrInvalidCredentials) {
			return vo.AuthLogin{}, vo.ErrInvalidCredentials
		}
		return vo.AuthLogin{}, fmt.Errorf("service: load admin user: %w", err)
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		return vo.AuthLogin{}, vo.ErrInvalidCredentials
	}
	if user.Status != "" && user.Status != adminStatusActive {
		return vo.AuthLogin{}, vo.ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = domain.RoleEditor
	}

	claims := sharedjwt.Claims{Subject: user.ID, Role: role, IssuedAt: s.now().UTC()}
	if s.opts.TokenTTL > 0 {
		claims.ExpiresAt = claims.IssuedAt.Add(s.opts.TokenTTL)
	}

	token, err := s.tokenManager.Sign(ctx, claims)
	if err != nil {
		return vo.AuthLogin{}, fmt.Errorf("service: failed to issue token: %w", err)
	}

	return vo.AuthLogin{
		AccessToken: token,
		TokenType:   "Bearer",
		Role:        role,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}
