package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamestore/internal/models"
	"gamestore/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL = time.Hour

	// Same cost the original registration flow used (saltRounds = 10).
	bcryptCost = 10
)

// Domain errors for auth flows.
var (
	// ErrDuplicateCredential means the email (or username) is already taken.
	ErrDuplicateCredential = errors.New("credential already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the response never reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers malformed, expired, revoked and orphaned tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService handles accounts and session tokens.
type AuthService struct {
	accounts   repository.Accounts
	tokens     repository.Tokens
	signingKey []byte
}

func NewAuthService(accounts repository.Accounts, tokens repository.Tokens, signingKey string) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens, signingKey: []byte(signingKey)}
}

var _ Authorization = (*AuthService)(nil)

// Register hashes the password and creates a new account. The email check
// here gives the friendly error; the UNIQUE constraint backs it up when
// two registrations race.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (int, error) {
	existing, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateCredential
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}

	id, err := s.accounts.Create(ctx, username, email, hash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateCredential
		}
		return 0, err
	}
	return id, nil
}

// Claims carried by issued tokens. The email claim is only a lookup key:
// Authenticate re-resolves the account on every request instead of
// trusting the signed snapshot.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Login validates credentials, signs a token and records it in the
// allow-list so logout can revoke it later.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate verifies the token signature and expiry, checks it has not
// been revoked, and re-resolves the account by the email claim.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	claims, err := s.parseToken(accessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	ok, err := s.tokens.Exists(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidToken
	}

	u, err := s.accounts.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// account gone since the token was issued
		return nil, ErrInvalidToken
	}
	return u, nil
}

// Logout drops the token from the allow-list. Idempotent.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	return s.tokens.Delete(ctx, accessToken)
}

// ChangePassword stores a fresh hash of the new password. The new value is
// always hashed with the same cost as registration.
func (s *AuthService) ChangePassword(ctx context.Context, email, newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return s.accounts.UpdatePasswordHash(ctx, email, hash)
}

func (s *AuthService) parseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// helper: issue a signed JWT for an account
func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: u.Username,
		Email:    u.Email,
	})
	return token.SignedString(s.signingKey)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: detect the driver's UNIQUE constraint error without depending on
// its concrete error type.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
