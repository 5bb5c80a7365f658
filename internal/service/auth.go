package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/feastbook/backend/internal/models"
	"github.com/feastbook/backend/internal/types"
)

// AuthService verifies credentials and issues signed tokens.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Login checks the supplied credentials and returns a signed token plus
// the user. Every failure path yields ErrInvalidCredentials so callers
// cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// bcrypt's comparison is constant-time over the hash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// GenerateToken signs an HS256 token carrying the user id and email.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		UserID: user.ID,
		Email:  user.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token string.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == uuid.Nil {
		// Older tokens carried only the subject.
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, errors.New("invalid token claims")
		}
		claims.UserID = id
	}
	return claims, nil
}
