package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// dummyHash keeps a failed username lookup as slow as a wrong password.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Service authenticates the employee configured in config.Auth and issues
// and checks the bearer tokens that guard the API.
type Service struct {
	cfg    *config.Auth
	logger *slog.Logger
	now    func() time.Time
}

func New(
	cfg *config.Auth,
	logger *slog.Logger,
) *Service {
	return &Service{cfg: cfg, logger: logger, now: time.Now}
}

// Login checks the credentials and returns a signed access token.
// Wrong username or password yields domain.ErrForbidden.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (token string, err error) {
	log := s.logger.With("context", "Login", "username", username)
	log.Debug("Login called")

	if !s.checkCredentials(username, password) {
		log.Warn("Login failed", "error", domain.ErrForbidden)
		return "", domain.ErrForbidden
	}
	token, err = s.GenerateToken(username)
	if err != nil {
		return "", err
	}
	log.Info("Login successful")
	return token, nil
}

func (s *Service) checkCredentials(username, password string) bool {
	hash := s.cfg.PasswordHash
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	if !userOK || hash == "" {
		_ = utils.CheckPasswordHash(password, dummyHash)
		return false
	}
	return utils.CheckPasswordHash(password, hash)
}

// GenerateToken signs an HS256 token whose subject is the username.
func (s *Service) GenerateToken(subject string) (string, error) {
	log := s.logger.With("sub", subject)
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Jwt.Expiry)),
		ID:        uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Jwt.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", fmt.Errorf("sign token: %w", err)
	}
	log.Debug("GenerateToken successful")
	return token, nil
}

// KeyFunc returns the verification key for tokens signed by GenerateToken.
// Any algorithm other than HS256 is refused.
func (s *Service) KeyFunc(t *jwt.Token) (any, error) {
	if t.Method != jwt.SigningMethodHS256 {
		return nil, fmt.Errorf("%w: unexpected signing method %v", domain.ErrUnauthorized, t.Header["alg"])
	}
	return []byte(s.cfg.Jwt.Secret), nil
}

// CurrentUser returns the username carried by a verified token.
func (s *Service) CurrentUser(token *jwt.Token) (string, error) {
	log := s.logger.With("context", "CurrentUser")
	if token == nil || !token.Valid {
		log.Warn("CurrentUser failed", "error", domain.ErrUnauthorized)
		return "", domain.ErrUnauthorized
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		log.Warn("CurrentUser failed", "error", domain.ErrUnauthorized)
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}
