package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/llmdesk/llmdesk/internal/models"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	jwtSecret  string
	accessTTL  = time.Hour
	refreshTTL = time.Hour * 168
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Init sets the signing secret and token lifetimes. Must be called before
// any token is issued or verified.
func Init(secret string, accessTokenTTL, refreshTokenTTL time.Duration) error {
	if secret == "" {
		return fmt.Errorf("JWT secret must not be empty")
	}

	jwtSecret = secret

	if accessTokenTTL > 0 {
		accessTTL = accessTokenTTL
	}

	if refreshTokenTTL > 0 {
		refreshTTL = refreshTokenTTL
	}

	return nil
}

// GenerateTokenPair issues a fresh access/refresh pair for the account.
// Refresh always mints a new pair; old tokens stay valid until expiry since
// tokens are stateless.
func GenerateTokenPair(userID uint, email string, role models.Role) (TokenPair, error) {
	accessToken, err := generateToken(userID, email, role, TokenTypeAccess, accessTTL)

	if err != nil {
		return TokenPair{}, err
	}

	refreshToken, err := generateToken(userID, email, role, TokenTypeRefresh, refreshTTL)

	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func generateToken(userID uint, email string, role models.Role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	// jti keeps every issued token distinct even within the same second,
	// so a refreshed pair never equals the pair it replaces.
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"typ":     tokenType,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyToken parses and validates tokenString, requiring its "typ" claim to
// match tokenType so a refresh token cannot be used as a bearer credential
// and vice versa.
func VerifyToken(tokenString, tokenType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if typ, _ := claims["typ"].(string); typ != tokenType {
		return nil, fmt.Errorf("unexpected token type")
	}

	return claims, nil
}
