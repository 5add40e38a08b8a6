package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long an issued session token remains valid. There is no
// server-side revocation; a token expires passively.
const SessionTTL = 7 * 24 * time.Hour

// Claims is the payload embedded in a session token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with an HMAC secret held in process
// configuration.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec. A zero ttl falls back to SessionTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl == 0 {
		ttl = SessionTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user expiring after the codec TTL.
func (c *Codec) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token string. Any failure (bad input, bad
// signature, expired claims) reports ok=false; Verify never panics regardless
// of input.
func (c *Codec) Verify(token string) (*Claims, bool) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, false
	}
	return claims, true
}
