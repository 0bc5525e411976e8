package auth

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := testutils.NewTestConfig(t)
	return New(cfg.Auth, testutils.DiscardLogger())
}

// parse verifies raw the way the bearer middleware does.
func parse(s *Service, raw string) (*jwt.Token, error) {
	return jwt.Parse(raw, s.KeyFunc, jwt.WithTimeFunc(s.now))
}

func TestLogin(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	token, err := s.Login(ctx, testutils.TestUsername, testutils.TestPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := parse(s, token)
	require.NoError(t, err)
	user, err := s.CurrentUser(parsed)
	require.NoError(t, err)
	assert.Equal(t, testutils.TestUsername, user)

	_, err = s.Login(ctx, testutils.TestUsername, "wrong")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = s.Login(ctx, "intruder", testutils.TestPassword)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_NoPasswordConfigured(t *testing.T) {
	t.Parallel()
	s := New(&config.Auth{
		Username: "admin",
		Jwt:      &config.Jwt{Secret: "x", Expiry: time.Minute},
	}, testutils.DiscardLogger())

	_, err := s.Login(context.Background(), "admin", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGenerateToken_Claims(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	issued := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	raw, err := s.GenerateToken("teller")
	require.NoError(t, err)

	parsed, err := parse(s, raw)
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "teller", claims["sub"])
	assert.NotEmpty(t, claims["jti"])
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.Equal(issued.Add(15*time.Minute)))
}

func TestKeyFunc_Rejects(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	t.Run("expired", func(t *testing.T) {
		issued := time.Now().Add(-time.Hour)
		old := &Service{cfg: s.cfg, logger: s.logger, now: func() time.Time { return issued }}
		raw, err := old.GenerateToken("teller")
		require.NoError(t, err)
		_, err = parse(s, raw)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := New(&config.Auth{Jwt: &config.Jwt{Secret: "other", Expiry: time.Minute}}, s.logger)
		raw, err := other.GenerateToken("teller")
		require.NoError(t, err)
		_, err = parse(s, raw)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "teller"}).
			SignedString([]byte(s.cfg.Jwt.Secret))
		require.NoError(t, err)
		_, err = parse(s, raw)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := parse(s, "not.a.token")
		assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	_, err := s.CurrentUser(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	invalid := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "teller"})
	_, err = s.CurrentUser(invalid)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "unverified tokens are rejected")

	noSub := &jwt.Token{Valid: true, Claims: jwt.MapClaims{"exp": float64(time.Now().Add(time.Minute).Unix())}}
	_, err = s.CurrentUser(noSub)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ok := &jwt.Token{Valid: true, Claims: jwt.MapClaims{"sub": "teller"}}
	user, err := s.CurrentUser(ok)
	require.NoError(t, err)
	assert.Equal(t, "teller", user)
}
