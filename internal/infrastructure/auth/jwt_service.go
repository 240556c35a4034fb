package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saradorri/economyengine/internal/config"
)

// Roles carried in tokens
const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
	RoleServer = "server"
)

// Claims represents the JWT claims
type Claims struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService defines the interface for the JWT service
type JWTService interface {
	GenerateToken(playerID int64, playerName, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type jwtService struct {
	config *config.JWTConfig
}

// NewJWTService creates a JWT service signing with the configured secret
func NewJWTService(config *config.JWTConfig) JWTService {
	return &jwtService{config}
}

// ValidRole reports whether role is one the service issues
func ValidRole(role string) bool {
	switch role {
	case RolePlayer, RoleAdmin, RoleServer:
		return true
	}
	return false
}

// GenerateToken creates a signed JWT token
func (j *jwtService) GenerateToken(playerID int64, playerName, role string) (string, error) {
	if !ValidRole(role) {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now()
	claims := &Claims{
		PlayerID:   playerID,
		PlayerName: playerName,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "economy-engine",
			Subject:   strconv.FormatInt(playerID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.Secret))
}

// ValidateToken parses and validates a JWT token
func (j *jwtService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(j.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if !ValidRole(claims.Role) {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	return claims, nil
}
