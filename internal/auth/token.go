package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jirao/internal/db"
)

// GenerateToken issues an HS256 token carrying the verified identity every
// gateway call runs under.
func GenerateToken(secret string, u *db.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    string(u.Role),
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token and returns the identity it carries.
func ParseToken(secret, tokenString string) (userID int, role db.Role, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token claims")
	}
	idValue, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("token missing user_id claim")
	}
	roleValue, ok := claims["role"].(string)
	if !ok {
		return 0, "", errors.New("token missing role claim")
	}
	return int(idValue), db.Role(roleValue), nil
}
