package services

import (
	"context"
	"io"
	"testing"
	"time"

	"cinema-catalog/internal/config"
	"cinema-catalog/internal/crud"
	"cinema-catalog/internal/database"
	"cinema-catalog/internal/models"
	"cinema-catalog/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "unit-test-secret"

func newUserService(t *testing.T) UserService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	users := repository.NewUserRepository(database.Wrap(db, config.DatabaseConfig{}))
	return NewUserService(users, config.JWTConfig{Secret: testSecret, TTL: time.Hour}, log)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestRegisterReturnsSignedToken(t *testing.T) {
	service := newUserService(t)

	token, err := service.Register(context.Background(), "Alice@Example.com", "secret123")
	require.NoError(t, err)

	assert.True(t, token.Expiration.After(time.Now()))

	claims := parseClaims(t, token.Token)
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, false, claims["isAdmin"])
	assert.NotEmpty(t, claims["sub"])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = service.Register(ctx, "ALICE@example.com", "other456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginVerifiesPassword(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	token, err := service.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	_, err = service.Login(ctx, "alice@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrLoginIncorrect)
}

func TestLoginUnknownEmailReturnsSameError(t *testing.T) {
	service := newUserService(t)

	_, err := service.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrLoginIncorrect)
}

func TestSetAdminTogglesClaimInIssuedTokens(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, service.SetAdmin(ctx, "alice@example.com", true))

	token, err := service.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	claims := parseClaims(t, token.Token)
	assert.Equal(t, true, claims["isAdmin"])

	require.NoError(t, service.SetAdmin(ctx, "alice@example.com", false))
	token, err = service.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	claims = parseClaims(t, token.Token)
	assert.Equal(t, false, claims["isAdmin"])
}

func TestSetAdminUnknownEmailReturnsNotFound(t *testing.T) {
	service := newUserService(t)

	err := service.SetAdmin(context.Background(), "nobody@example.com", true)
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestListPaginatesUsersOrderedByEmail(t *testing.T) {
	service := newUserService(t)
	ctx := context.Background()

	for _, email := range []string{"carol@example.com", "alice@example.com", "bob@example.com"} {
		_, err := service.Register(ctx, email, "secret123")
		require.NoError(t, err)
	}

	users, total, err := service.List(ctx, crud.NewPagination(1, 2))
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Equal(t, "bob@example.com", users[1].Email)
}
