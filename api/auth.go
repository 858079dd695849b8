package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type SupabaseJWT struct {
	Audience     string       `json:"aud"`
	Email        *string      `json:"email"`
	ExpiresAt    int64        `json:"exp"`
	IssuedAt     int64        `json:"iat"`
	Issuer       string       `json:"iss"`
	Role         string       `json:"role"`
	SessionID    string       `json:"session_id"`
	Subject      string       `json:"sub"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

type UserMetadata struct {
	WalletAddress string `json:"wallet_address"`
}

// WalletAddress is the caller identity portfolios are keyed by. Wallet-auth
// sessions carry it in user metadata; fall back to the subject for email
// sessions.
func (j SupabaseJWT) WalletAddress() string {
	if j.UserMetadata.WalletAddress != "" {
		return j.UserMetadata.WalletAddress
	}
	return j.Subject
}

func parseSupabaseJWT(jwtStr string, decodeToken string) (*SupabaseJWT, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claims: %w", err)
	}

	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}

func (m ApiHandler) authMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}

	jwtStr := strings.TrimPrefix(authHeader, "Bearer ")
	parsedJWT, err := parseSupabaseJWT(jwtStr, m.JwtDecodeSecret)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	c.Set("caller", parsedJWT.WalletAddress())
	c.Next()
}
