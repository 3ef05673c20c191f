// Package auth issues and verifies bearer tokens for the configured catalog administrator.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/playstack/game-catalog-service/internal/config"
	"github.com/playstack/game-catalog-service/internal/logging"
	"github.com/playstack/game-catalog-service/internal/metrics"
)

var (
	// ErrInvalidCredentials is returned when the username or password does not match,
	// or when login is not configured.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned by Verify for any token that fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the JWT claims issued at login.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Token is a signed JWT and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Service checks credentials against configuration and signs HS256 tokens.
type Service struct {
	cfg     config.AuthConfig
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewService constructs an auth Service.
func NewService(cfg config.AuthConfig, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// WithClock swaps the time source used for issuing and verifying tokens.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Enabled reports whether login can succeed at all.
func (s *Service) Enabled() bool {
	return s.cfg.LoginEnabled()
}

// Login verifies the credential pair and issues a token.
func (s *Service) Login(ctx context.Context, username, password string) (Token, error) {
	logger := logging.FromContext(ctx, s.logger)
	if !s.Enabled() {
		s.metrics.RecordLogin(false)
		logging.Warn(logger, "login attempted but no credentials are configured")
		return Token{}, ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	// the hash is always checked so a wrong username costs as much as a wrong password
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		s.metrics.RecordLogin(false)
		if passErr != nil && !errors.Is(passErr, bcrypt.ErrMismatchedHashAndPassword) {
			logging.Error(logger, "password hash check failed", passErr)
		}
		logging.Info(logger, "login rejected", logging.FieldUser, username)
		return Token{}, ErrInvalidCredentials
	}

	token, err := s.issue(username)
	if err != nil {
		s.metrics.RecordLogin(false)
		logging.Error(logger, "failed to sign token", err, logging.FieldUser, username)
		return Token{}, err
	}
	s.metrics.RecordLogin(true)
	logging.Info(logger, "login succeeded", logging.FieldUser, username)
	return token, nil
}

func (s *Service) issue(username string) (Token, error) {
	now := s.now().UTC()
	expires := now.Add(s.cfg.JWTTTL)
	claims := Claims{
		Name: username,
		Role: s.cfg.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.cfg.JWTIssuer,
			Audience:  jwt.ClaimStrings{s.cfg.JWTAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: expires.Truncate(time.Second)}, nil
}

// Verify parses a token and checks its signature, issuer, audience and expiry.
func (s *Service) Verify(raw string) (*Claims, error) {
	if s.cfg.JWTSecret == "" {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.JWTIssuer),
		jwt.WithAudience(s.cfg.JWTAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
