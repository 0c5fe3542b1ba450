// Package auth issues and checks FitConnect session tokens and guards routes
// by marketplace role.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Role is the side of the marketplace an account signed up on.
type Role string

const (
	RoleTrainer Role = "TRAINER"
	RoleClient  Role = "CLIENT"
)

func (r Role) Valid() bool {
	return r == RoleTrainer || r == RoleClient
}

const (
	kindAccess  = "access"
	kindRefresh = "refresh"

	jwtIssuer   = "fitconnect-api"
	jwtAudience = "fitconnect-users"

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrInvalidRole      = errors.New("token carries an unknown role")
	ErrEmptyJWTSecret   = errors.New("jwt secret cannot be empty")
)

// Subject identifies the account a token is issued for.
type Subject struct {
	UserID string
	Email  string
	Role   Role
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type JWTClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *JWTClaims) Subject() Subject {
	return Subject{UserID: c.UserID, Email: c.Email, Role: c.Role}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(hashedPassword, plainPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil
}

func sign(sub Subject, kind, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptyJWTSecret
	}
	if !sub.Role.Valid() {
		return "", ErrInvalidRole
	}

	now := time.Now()
	claims := &JWTClaims{
		UserID:    sub.UserID,
		Email:     sub.Email,
		Role:      sub.Role,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub.UserID,
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func IssueAccessToken(sub Subject, secret string) (string, error) {
	return sign(sub, kindAccess, secret, AccessTokenTTL)
}

func IssueRefreshToken(sub Subject, secret string) (string, error) {
	return sign(sub, kindRefresh, secret, RefreshTokenTTL)
}

// IssueTokens signs an access and a refresh token for sub with separate secrets.
func IssueTokens(sub Subject, accessSecret, refreshSecret string) (TokenPair, error) {
	access, err := IssueAccessToken(sub, accessSecret)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := IssueRefreshToken(sub, refreshSecret)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func parse(tokenString, secret string) (*JWTClaims, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(jwtIssuer),
		jwt.WithAudience(jwtAudience),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case !token.Valid:
		return nil, ErrInvalidToken
	case !claims.Role.Valid():
		return nil, ErrInvalidRole
	}
	return claims, nil
}

func parseKind(tokenString, secret, kind string) (*JWTClaims, error) {
	claims, err := parse(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != kind {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}

// ParseAccessToken verifies an access token and returns its claims.
func ParseAccessToken(tokenString, secret string) (*JWTClaims, error) {
	return parseKind(tokenString, secret, kindAccess)
}

func ParseRefreshToken(tokenString, secret string) (*JWTClaims, error) {
	return parseKind(tokenString, secret, kindRefresh)
}

// Refresh trades a refresh token for a new access token for the same subject.
func Refresh(refreshToken, refreshSecret, accessSecret string) (string, *JWTClaims, error) {
	claims, err := ParseRefreshToken(refreshToken, refreshSecret)
	if err != nil {
		return "", nil, err
	}

	access, err := IssueAccessToken(claims.Subject(), accessSecret)
	if err != nil {
		return "", nil, err
	}
	return access, claims, nil
}
