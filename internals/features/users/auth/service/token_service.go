package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

const TokenTTL = 2 * time.Hour

// IdentityClaims are the optional identity links resolved at login time.
// Absent links stay out of the token entirely.
type IdentityClaims struct {
	TeacherID uuid.UUID
	StudentID uuid.UUID
	GradeID   uuid.UUID
}

// GenerateToken signs an HS256 token carrying the user's identity and
// tenant claims. No refresh flow: the token expires after TokenTTL.
func GenerateToken(user *userModel.UserModel, identity IdentityClaims) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(TokenTTL).Unix(),
	}
	if user.SchoolID != nil && *user.SchoolID != uuid.Nil {
		claims["school_id"] = user.SchoolID.String()
	}
	if identity.TeacherID != uuid.Nil {
		claims["teacher_id"] = identity.TeacherID.String()
	}
	if identity.StudentID != uuid.Nil {
		claims["student_id"] = identity.StudentID.String()
	}
	if identity.GradeID != uuid.Nil {
		claims["grade_id"] = identity.GradeID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// TokenExpiry reads the exp claim without verifying the signature. Used by
// logout to decide how long the blacklist entry must live.
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Now().UTC().Add(TokenTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0).UTC()
	}
	return time.Now().UTC().Add(TokenTTL)
}
