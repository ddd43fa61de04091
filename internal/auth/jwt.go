package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// appJWTLifetime is kept under GitHub's 10 minute maximum for App JWTs.
const appJWTLifetime = 9 * time.Minute

// mintAppJWT signs a short-lived RS256 JWT identifying the App itself.
// The issued-at claim is backdated by a minute to tolerate clock drift
// between us and the provider.
func mintAppJWT(appID int64, privateKeyPEM []byte, now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return "", fmt.Errorf("parse app private key: %w", err)
	}

	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(appID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(now.Add(appJWTLifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign app token: %w", err)
	}

	return signed, nil
}
