package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tutorhub/internal/auth"
	"tutorhub/internal/directory"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

const bcryptCost = 10

// AuthService handles registration, login and session introspection.
//
// This is demo-grade auth by product decision: login matches the email only
// and never checks the password. The hash is still computed and persisted
// at registration so the stored records carry what a real backend needs.
type AuthService interface {
	Register(ctx context.Context, email, password string, role model.Role) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, tokenString string) error
	Me(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	dir        *directory.Directory
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(dir *directory.Directory, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		dir:        dir,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register creates a user, persists it and returns a session token. The
// display name is derived from the email local part.
func (s *authService) Register(ctx context.Context, email, password string, role model.Role) (*model.User, string, error) {
	if role != model.RoleParent && role != model.RoleTutor {
		return nil, "", fmt.Errorf("role %s cannot self-register", role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           "user-" + newID(),
		Email:        email,
		Name:         strings.SplitN(email, "@", 2)[0],
		Role:         role,
		Status:       model.UserActive,
		PasswordHash: string(hashed),
	}

	err = s.dir.Update(ctx, func(snap *model.Snapshot) error {
		if snap.UserByEmail(email) != nil {
			return apperrors.ErrDuplicateEmail
		}
		snap.Users = append(snap.Users, user)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateAccessToken(&user)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	redacted := user.Redacted()
	return &redacted, token, nil
}

// Login looks the user up by email and returns a session token.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	var user model.User
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		u := snap.UserByEmail(email)
		if u == nil {
			return apperrors.ErrInvalidCredentials
		}
		if u.Banned() {
			return apperrors.ErrUserBanned
		}
		user = *u
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateAccessToken(&user)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	redacted := user.Redacted()
	return &redacted, token, nil
}

// Logout revokes the presented token via the blacklist.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return apperrors.ErrUnauthenticated
	}
	ttl := auth.AccessTokenExpiry
	if exp := claims.ExpiresAt; exp != nil {
		ttl = exp.Sub(claims.IssuedAt.Time)
	}
	return s.tokenStore.BlacklistAccessToken(ctx, claims.ID, ttl)
}

// Me returns the session's user, or (nil, nil) when no session is active.
func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, nil
	}

	var user *model.User
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		if u := snap.UserByID(userID); u != nil {
			redacted := u.Redacted()
			user = &redacted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
