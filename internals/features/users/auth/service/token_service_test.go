package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	return claims
}

func TestGenerateTokenCarriesIdentityClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	schoolID := uuid.New()
	user := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "budi",
		Email:    "budi@example.com",
		Role:     constants.RoleTeacher,
		SchoolID: &schoolID,
	}
	identity := IdentityClaims{TeacherID: uuid.New()}

	tokenString, err := GenerateToken(user, identity)
	require.NoError(t, err)

	claims := parseClaims(t, tokenString)
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, "budi", claims["user_name"])
	assert.Equal(t, constants.RoleTeacher, claims["role"])
	assert.Equal(t, schoolID.String(), claims["school_id"])
	assert.Equal(t, identity.TeacherID.String(), claims["teacher_id"])
	_, hasStudent := claims["student_id"]
	assert.False(t, hasStudent, "absent identity links stay out of the token")
}

func TestGenerateTokenOmitsMissingSchool(t *testing.T) {
	configs.JWTSecret = "test-secret"
	user := &userModel.UserModel{ID: uuid.New(), UserName: "root", Role: constants.RoleSuperAdmin}

	tokenString, err := GenerateToken(user, IdentityClaims{})
	require.NoError(t, err)

	claims := parseClaims(t, tokenString)
	_, hasSchool := claims["school_id"]
	assert.False(t, hasSchool)
}

func TestGenerateTokenExpiry(t *testing.T) {
	configs.JWTSecret = "test-secret"
	user := &userModel.UserModel{ID: uuid.New(), Role: constants.RoleUser}

	tokenString, err := GenerateToken(user, IdentityClaims{})
	require.NoError(t, err)

	exp := TokenExpiry(tokenString)
	ttl := time.Until(exp)
	assert.Greater(t, ttl, TokenTTL-time.Minute)
	assert.LessOrEqual(t, ttl, TokenTTL)
}

func TestGenerateTokenFailsWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	user := &userModel.UserModel{ID: uuid.New(), Role: constants.RoleUser}
	_, err := GenerateToken(user, IdentityClaims{})
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)
	assert.True(t, CheckPassword(hashed, "s3cret-pass"))
	assert.False(t, CheckPassword(hashed, "wrong-pass"))
}
