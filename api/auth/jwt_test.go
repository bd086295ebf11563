package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/complyware/vendorback/models"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "consultant@example.com",
		Role:     models.UserRoleConsultant,
		FullName: "Casey Reviewer",
	}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	claims, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.UserRoleConsultant, claims.Role)
	assert.Equal(t, user.FullName, claims.FullName)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	user := &models.User{ID: primitive.NewObjectID(), Role: models.UserRoleVendor}
	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	signer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	user := &models.User{ID: primitive.NewObjectID(), Role: models.UserRoleAdmin}
	token, err := signer.GenerateToken(user)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}
