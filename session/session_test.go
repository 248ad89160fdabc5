package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nonsonwune/gradlink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 1,
		"exp":    exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLifecycle(t *testing.T) {
	store := NewStore()
	assert.Equal(t, Anonymous, store.State())
	assert.False(t, store.Authenticated())

	store.Begin()
	assert.Equal(t, Authenticating, store.State())
	assert.False(t, store.Authenticated())

	store.Complete(models.User{ID: 1, Role: models.RoleEmployer}, "tok")
	assert.Equal(t, Authenticated, store.State())
	assert.True(t, store.Authenticated())
	assert.Equal(t, "tok", store.Token())

	store.Logout()
	assert.Equal(t, Anonymous, store.State())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
}

func TestFailedLoginStaysAnonymous(t *testing.T) {
	store := NewStore()
	store.Begin()
	store.Fail()
	assert.Equal(t, Anonymous, store.State())
	assert.False(t, store.Authenticated())
}

func TestRoleGate(t *testing.T) {
	store := NewStore()
	assert.False(t, store.HasRole(models.RoleAdmin), "anonymous sessions never pass the gate")

	store.Complete(models.User{ID: 1, Role: models.RoleJobSeeker}, "tok")
	assert.True(t, store.HasRole(models.RoleJobSeeker))
	assert.False(t, store.HasRole(models.RoleAdmin))
	assert.True(t, store.HasRole(models.RoleAdmin, models.RoleJobSeeker))
}

func TestExpired(t *testing.T) {
	store := NewStore()
	assert.False(t, store.Expired(), "no token, nothing to expire")

	store.Complete(models.User{ID: 1}, signedToken(t, time.Now().Add(time.Hour)))
	assert.False(t, store.Expired())

	store.Complete(models.User{ID: 1}, signedToken(t, time.Now().Add(-time.Hour)))
	assert.True(t, store.Expired())

	store.Complete(models.User{ID: 1}, "not-a-jwt")
	assert.False(t, store.Expired(), "opaque tokens never read as expired")
}
