package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		hashed, err := HashPassword("password")

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, "password", hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		hash1, _ := HashPassword("samePassword")
		hash2, _ := HashPassword("samePassword")

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	hashed, _ := HashPassword("correctPassword")

	assert.True(t, CheckPassword(hashed, "correctPassword"))
	assert.False(t, CheckPassword(hashed, "wrongPassword"))
	assert.False(t, CheckPassword(hashed, ""))
}

var (
	sarah = Subject{UserID: "t1", Email: "sarah@example.com", Role: RoleTrainer}
	alex  = Subject{UserID: "c1", Email: "alex@example.com", Role: RoleClient}
	emily = Subject{UserID: "t3", Email: "emily@example.com", Role: RoleTrainer}
)

func signed(t *testing.T, claims *JWTClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleTrainer.Valid())
	assert.True(t, RoleClient.Valid())
	assert.False(t, Role("ADMIN").Valid())
	assert.False(t, Role("trainer").Valid())
	assert.False(t, Role("").Valid())
}

func TestIssueAccessToken(t *testing.T) {
	t.Run("Token contains correct claims", func(t *testing.T) {
		token, err := IssueAccessToken(sarah, testSecret)
		require.NoError(t, err)

		claims, err := ParseAccessToken(token, testSecret)
		require.NoError(t, err)

		assert.Equal(t, sarah, claims.Subject())
		assert.Equal(t, "access", claims.TokenType)
		assert.Equal(t, jwtIssuer, claims.Issuer)
		assert.Contains(t, claims.Audience, jwtAudience)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := IssueAccessToken(sarah, "")

		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Empty(t, token)
	})

	t.Run("Fail with unknown role", func(t *testing.T) {
		token, err := IssueAccessToken(Subject{UserID: "x1", Role: "ADMIN"}, testSecret)

		assert.ErrorIs(t, err, ErrInvalidRole)
		assert.Empty(t, token)
	})
}

func TestIssueTokens(t *testing.T) {
	t.Run("Successfully issue both tokens", func(t *testing.T) {
		pair, err := IssueTokens(alex, "access-secret", "refresh-secret")

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

		_, err = ParseRefreshToken(pair.RefreshToken, "refresh-secret")
		assert.NoError(t, err)
	})

	t.Run("Fail with empty refresh secret", func(t *testing.T) {
		pair, err := IssueTokens(alex, "access-secret", "")

		assert.Error(t, err)
		assert.Empty(t, pair.AccessToken)
		assert.Empty(t, pair.RefreshToken)
	})
}

func TestParseAccessToken(t *testing.T) {
	t.Run("Fail with wrong secret", func(t *testing.T) {
		token, _ := IssueAccessToken(alex, testSecret)

		claims, err := ParseAccessToken(token, "wrong-secret")

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Fail with invalid token format", func(t *testing.T) {
		claims, err := ParseAccessToken("invalid.token.format", testSecret)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Fail with refresh token", func(t *testing.T) {
		token, _ := IssueRefreshToken(alex, testSecret)

		claims, err := ParseAccessToken(token, testSecret)

		assert.Equal(t, ErrInvalidTokenType, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with expired token", func(t *testing.T) {
		pastTime := time.Now().Add(-1 * time.Hour)
		token := signed(t, &JWTClaims{
			UserID:    "c1",
			Email:     "alex@example.com",
			Role:      RoleClient,
			TokenType: "access",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    jwtIssuer,
				Audience:  []string{jwtAudience},
				ExpiresAt: jwt.NewNumericDate(pastTime),
				IssuedAt:  jwt.NewNumericDate(pastTime.Add(-15 * time.Minute)),
			},
		}, testSecret)

		claims, err := ParseAccessToken(token, testSecret)

		assert.Equal(t, ErrTokenExpired, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with unknown role in signed claims", func(t *testing.T) {
		token := signed(t, &JWTClaims{
			UserID:    "x1",
			Email:     "root@example.com",
			Role:      "ADMIN",
			TokenType: "access",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    jwtIssuer,
				Audience:  []string{jwtAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, testSecret)

		claims, err := ParseAccessToken(token, testSecret)

		assert.Equal(t, ErrInvalidRole, err)
		assert.Nil(t, claims)
	})
}

func TestRefresh(t *testing.T) {
	accessSecret := "access-secret"
	refreshSecret := "refresh-secret"

	t.Run("Successfully refresh access token", func(t *testing.T) {
		refreshToken, _ := IssueRefreshToken(emily, refreshSecret)

		newAccessToken, claims, err := Refresh(refreshToken, refreshSecret, accessSecret)
		require.NoError(t, err)
		assert.Equal(t, "t3", claims.UserID)

		accessClaims, err := ParseAccessToken(newAccessToken, accessSecret)
		require.NoError(t, err)
		assert.Equal(t, emily, accessClaims.Subject())
	})

	t.Run("Fail with access token instead of refresh token", func(t *testing.T) {
		accessToken, _ := IssueAccessToken(emily, accessSecret)

		newAccessToken, claims, err := Refresh(accessToken, accessSecret, accessSecret)

		assert.Equal(t, ErrInvalidTokenType, err)
		assert.Empty(t, newAccessToken)
		assert.Nil(t, claims)
	})
}

func TestTokenExpiration(t *testing.T) {
	token, err := IssueRefreshToken(alex, testSecret)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(token, testSecret)
	require.NoError(t, err)

	diff := claims.ExpiresAt.Time.Sub(time.Now().Add(RefreshTokenTTL)).Abs()
	assert.Less(t, diff, 2*time.Second)
}
