package utils

import (
	"errors"
	"fmt"
	"time"

	"bookwise/models"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// TokenKind tells the two token envelopes apart.
type TokenKind string

const (
	// TokenOTP carries a pending identity and its one-time code.
	TokenOTP TokenKind = "otp"
	// TokenSession carries an authenticated principal.
	TokenSession TokenKind = "session"
)

var (
	// ErrInvalidToken is wrapped by every decode failure.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for well-formed, correctly signed tokens past their expiry.
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrInvalidToken)
)

// TokenPayload is what a verification token carries.
type TokenPayload struct {
	Kind TokenKind

	// TokenOTP fields.
	Pending *models.PendingIdentity
	OTP     string

	// TokenSession fields.
	PrincipalID string
	Role        models.Role
}

type tokenClaims struct {
	Kind    TokenKind               `json:"knd"`
	Pending *models.PendingIdentity `json:"pnd,omitempty"`
	OTP     string                  `json:"otp,omitempty"`
	Role    models.Role             `json:"rol,omitempty"`
	jwt.StandardClaims
}

// TokenCodec signs and verifies HS256 tokens with one process-wide secret.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

// NewTokenCodec creates a codec for the given secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: time.Now}
}

// WithClock returns a copy of the codec reading time from now.
func (tc *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	return &TokenCodec{secret: tc.secret, now: now}
}

// Encode creates a signed token for payload that expires after ttl.
func (tc *TokenCodec) Encode(payload TokenPayload, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive")
	}
	switch payload.Kind {
	case TokenOTP:
		if payload.Pending == nil || payload.OTP == "" {
			return "", fmt.Errorf("otp token needs a pending identity and a code")
		}
	case TokenSession:
		if payload.PrincipalID == "" || !payload.Role.Valid() {
			return "", fmt.Errorf("session token needs a principal and a role")
		}
	default:
		return "", fmt.Errorf("unknown token kind %q", payload.Kind)
	}

	issuedAt := tc.now()
	claims := tokenClaims{
		Kind:    payload.Kind,
		Pending: payload.Pending,
		OTP:     payload.OTP,
		Role:    payload.Role,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Subject:   payload.PrincipalID,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Decode verifies signature and expiry and returns the payload. Any failure
// wraps ErrInvalidToken and yields no partial data.
func (tc *TokenCodec) Decode(tokenString string) (TokenPayload, error) {
	parser := &jwt.Parser{
		ValidMethods: []string{jwt.SigningMethodHS256.Alg()},
		// Expiry is checked below against the codec clock.
		SkipClaimsValidation: true,
	}

	var claims tokenClaims
	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tc.secret, nil
	})
	if err != nil {
		return TokenPayload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.VerifyExpiresAt(tc.now().Unix(), true) {
		return TokenPayload{}, ErrTokenExpired
	}

	payload := TokenPayload{Kind: claims.Kind}
	switch claims.Kind {
	case TokenOTP:
		if claims.Pending == nil || claims.OTP == "" {
			return TokenPayload{}, fmt.Errorf("%w: incomplete otp envelope", ErrInvalidToken)
		}
		payload.Pending = claims.Pending
		payload.OTP = claims.OTP
	case TokenSession:
		if claims.Subject == "" || !claims.Role.Valid() {
			return TokenPayload{}, fmt.Errorf("%w: incomplete session envelope", ErrInvalidToken)
		}
		payload.PrincipalID = claims.Subject
		payload.Role = claims.Role
	default:
		return TokenPayload{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidToken, claims.Kind)
	}
	return payload, nil
}
