package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lokaclean/backoffice/internal/domain"
)

// JWTManager signs and verifies the gateway's own access tokens. The token
// carries the session id and actor role; upstream credentials never leave
// the session store.
type JWTManager struct {
	signingKey []byte
	accessTTL  time.Duration
}

func NewJWTManager(signingKey string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		signingKey: []byte(signingKey),
		accessTTL:  accessTTL,
	}
}

type AccessClaims struct {
	jwt.RegisteredClaims
	Actor     string `json:"actor"`      // USER | ADMIN
	SessionID string `json:"session_id"` // UUID of the gateway session
}

// Issue mints an HS256 access token for one session.
func (m *JWTManager) Issue(sessionID string, actor domain.Actor) (token string, expiresIn int64, err error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
		Actor:     string(actor),
		SessionID: sessionID,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.signingKey)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(m.accessTTL.Seconds()), nil
}

// Parse validates signature and expiry and returns session id and actor.
func (m *JWTManager) Parse(tokenStr string) (sessionID string, actor domain.Actor, err error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.signingKey, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := tok.Claims.(*AccessClaims)
	if !ok || !tok.Valid {
		return "", "", fmt.Errorf("invalid token")
	}
	sid := claims.SessionID
	if sid == "" {
		sid = claims.Subject
	}
	if sid == "" {
		return "", "", fmt.Errorf("token without session")
	}
	switch domain.Actor(claims.Actor) {
	case domain.ActorUser, domain.ActorAdmin:
		return sid, domain.Actor(claims.Actor), nil
	default:
		return "", "", fmt.Errorf("unknown actor %q", claims.Actor)
	}
}
