package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ommivivekanandsai/EduFolio/internal/models"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("s-1", models.RoleStudent, testSecret, time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, "s-1", claims.StudentID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.False(t, IsAdmin(claims))
}

func TestAdminToken(t *testing.T) {
	token, err := GenerateToken("ops-1", models.RoleAdmin, testSecret, time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	assert.NoError(t, err)
	assert.True(t, IsAdmin(claims))
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("s-1", models.RoleStudent, testSecret, time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("s-1", models.RoleStudent, testSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.Error(t, err)
}
