package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"account-service/internal/domain"
)

var (
	// ErrTokenExpired indicates a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed indicates input that is not structurally a token.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenInvalid indicates a bad signature or any other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the payload embedded in issued tokens. Email and LastName are
// copies of account state at issuance time, for display only; callers must
// re-read the account before making any authorization decision.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	LastName string `json:"last_name"`
}

// AccountID returns the token subject as an account id.
func (c *Claims) AccountID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrTokenInvalid
	}
	return id, nil
}

// TokenCodec issues and verifies compact HS256-signed tokens. The secret
// and TTL are process-wide configuration, set once at startup.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Issue returns a signed token for the account, expiring after the codec's
// configured TTL.
func (c *TokenCodec) Issue(account *domain.Account) (string, error) {
	return c.IssueWithTTL(account, c.ttl)
}

// IssueWithTTL is Issue with an explicit validity duration.
func (c *TokenCodec) IssueWithTTL(account *domain.Account, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Email:    account.Email,
		LastName: account.LastName,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of a token string and returns its
// claims. Attacker-controlled input never panics; every failure maps to one
// of the typed sentinel errors.
func (c *TokenCodec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
