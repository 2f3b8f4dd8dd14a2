package auth

import (
	"crypto/ecdsa"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"searchads-go/pkg/logger"
)

const (
	// Fixed audience required by the Search Ads OAuth issuer.
	tokenAudience = "https://appleid.apple.com"
	tokenLifetime = 24 * time.Hour

	pemMarker = "-----BEGIN"
)

// TokenSource mints bearer tokens for authenticated API calls.
type TokenSource interface {
	Token() (string, error)
}

type es256TokenSource struct {
	clientID string
	teamID   string
	keyID    string
	key      *ecdsa.PrivateKey
	now      func() time.Time
	log      *logger.Logger
}

// NewES256TokenSource builds a token source from the stored credentials.
// The private key may be raw PEM or base64-encoded PEM; anything that
// does not decode to PEM text is rejected up front so the run fails
// before any category is fetched.
func NewES256TokenSource(clientID, teamID, keyID, privateKey string) (TokenSource, error) {
	if clientID == "" || teamID == "" || keyID == "" || privateKey == "" {
		return nil, fmt.Errorf("missing required credentials")
	}

	pemText := decodeKeyMaterial(privateKey)
	if !strings.HasPrefix(pemText, pemMarker) {
		return nil, fmt.Errorf("invalid private key format: expected PEM-encoded EC key")
	}

	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(pemText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &es256TokenSource{
		clientID: clientID,
		teamID:   teamID,
		keyID:    keyID,
		key:      key,
		now:      time.Now,
		log:      logger.GetLogger().WithField("component", "token_source"),
	}, nil
}

// Token mints a fresh 24h token. No caching: the job issues one call
// per category per run, so signing cost is negligible.
func (s *es256TokenSource) Token() (string, error) {
	now := s.now()

	claims := jwt.RegisteredClaims{
		Subject:   s.clientID,
		Audience:  jwt.ClaimStrings{tokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		Issuer:    s.teamID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = s.keyID

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.log.Debug("Minted API token")
	return signed, nil
}

// decodeKeyMaterial returns PEM text from either raw or base64 input.
// Raw PEM is passed through untouched; base64 decode failures fall back
// to the literal value so the PEM check reports the real problem.
func decodeKeyMaterial(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, pemMarker) {
		return trimmed
	}
	if decoded, err := base64.StdEncoding.DecodeString(trimmed); err == nil {
		return strings.TrimSpace(string(decoded))
	}
	return trimmed
}
