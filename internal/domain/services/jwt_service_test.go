package services

import (
	"testing"

	"immowaechter-http-service/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	db := newTestDB(t)
	service := NewJWTService(newTestConfig(), db)

	token, err := service.GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ExtractClaims(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.OwnerID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "immowaechter-http-service", claims.Issuer)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	db := newTestDB(t)
	service := NewJWTService(newTestConfig(), db)

	token, err := service.GenerateToken(1, "owner")
	require.NoError(t, err)

	_, err = service.ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	db := newTestDB(t)
	service := NewJWTService(newTestConfig(), db)

	otherConfig := newTestConfig()
	otherConfig.JWTSecretKey = "another-secret"
	other := NewJWTService(otherConfig, db)

	token, err := other.GenerateToken(1, "owner")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	service := NewJWTService(newTestConfig(), db)

	hash, err := utils.HashPassword("geheimnis123")
	require.NoError(t, err)
	owner := seedOwner(t, db, "owner@example.test", false)
	require.NoError(t, db.Model(owner).Update("password_hash", hash).Error)

	result, err := service.Login("owner@example.test", "geheimnis123")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, result.OwnerID)
	assert.Equal(t, "owner", result.Role)
	assert.NotEmpty(t, result.Token)

	claims, err := service.ExtractClaims(result.Token)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, claims.OwnerID)
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	service := NewJWTService(newTestConfig(), db)

	hash, err := utils.HashPassword("geheimnis123")
	require.NoError(t, err)
	owner := seedOwner(t, db, "owner@example.test", false)
	require.NoError(t, db.Model(owner).Update("password_hash", hash).Error)

	_, err = service.Login("unknown@example.test", "geheimnis123")
	assert.EqualError(t, err, "owner not found")

	_, err = service.Login("owner@example.test", "falsch")
	assert.EqualError(t, err, "incorrect password")
}
