package auth

import (
	"testing"
	"time"

	"github.com/aguamarina/pos-tienda/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *user.User {
	return &user.User{
		ID:    "user-1",
		Name:  "Caixa",
		Email: "caixa@tienda.test",
		Role:  user.RoleStaff,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := &JWTService{secretKey: []byte("test-secret"), expiration: time.Hour}

	token, err := service.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "caixa@tienda.test", claims.Email)
	assert.Equal(t, string(user.RoleStaff), claims.Role)
}

func TestValidateTokenExpiredReturnsClaims(t *testing.T) {
	expired := &JWTService{secretKey: []byte("test-secret"), expiration: -time.Hour}

	token, err := expired.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := expired.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	// as claims de um token expirado com assinatura válida ficam
	// disponíveis para a renovação
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestRefreshTokenAcceptsExpiredToken(t *testing.T) {
	expired := &JWTService{secretKey: []byte("test-secret"), expiration: -time.Hour}
	service := &JWTService{secretKey: []byte("test-secret"), expiration: time.Hour}

	token, err := expired.GenerateToken(testUser())
	require.NoError(t, err)

	refreshed, err := service.RefreshToken(token)
	require.NoError(t, err)

	claims, err := service.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "caixa@tienda.test", claims.Email)
}

func TestRefreshTokenRejectsMalformedToken(t *testing.T) {
	service := &JWTService{secretKey: []byte("test-secret"), expiration: time.Hour}

	_, err := service.RefreshToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	service := &JWTService{secretKey: []byte("test-secret"), expiration: time.Hour}
	other := &JWTService{secretKey: []byte("outra-chave"), expiration: time.Hour}

	token, err := service.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
