package auth

import (
	"testing"

	"hospital-gin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseRoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Email: "doc@hospital.com", Role: models.RoleDoctor}

	token, err := Sign(user, "secret")
	require.NoError(t, err)

	claims, err := Parse(token, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, models.RoleDoctor, claims.Role)
	assert.Equal(t, "doc@hospital.com", claims.Subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 7, Email: "doc@hospital.com", Role: models.RoleDoctor}

	token, err := Sign(user, "secret")
	require.NoError(t, err)

	_, err = Parse(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
