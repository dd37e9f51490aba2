package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rentora/pkg/domain-errors"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-signing-key", "rentora")
	accountID := uuid.New()

	signed, err := svc.Generate(accountID, "saritha", "client", time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.AccountID)
	assert.Equal(t, "saritha", claims.Username)
	assert.Equal(t, "client", claims.Role)
	assert.NotEmpty(t, claims.JTI)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewService("test-signing-key", "rentora")

	signed, err := svc.Generate(uuid.New(), "admin", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateRejectsWrongKey(t *testing.T) {
	signed, err := NewService("key-one", "rentora").Generate(uuid.New(), "admin", "admin", time.Minute)
	require.NoError(t, err)

	_, err = NewService("key-two", "rentora").ValidateToken(signed)
	require.Error(t, err)
}

func TestExpiryOfWorksForExpiredTokens(t *testing.T) {
	svc := NewService("test-signing-key", "rentora")
	signed, err := svc.Generate(uuid.New(), "admin", "admin", -time.Hour)
	require.NoError(t, err)

	exp, err := svc.ExpiryOf(signed)
	require.NoError(t, err)
	assert.True(t, exp.Before(time.Now()))
}
