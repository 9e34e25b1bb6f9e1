package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/internal/domain"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:       42,
		Email:    "alice@example.com",
		LastName: "Liddell",
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), 15*time.Minute)

	tok, err := codec.Issue(testAccount())
	require.NoError(t, err)

	claims, err := codec.Parse(tok)
	require.NoError(t, err)

	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Liddell", claims.LastName)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenCodec_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), 15*time.Minute)

	tok, err := codec.IssueWithTTL(testAccount(), -1*time.Second)
	require.NoError(t, err)

	_, err = codec.Parse(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenCodec([]byte("right-secret"), 15*time.Minute)
	verifier := NewTokenCodec([]byte("wrong-secret"), 15*time.Minute)

	tok, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = verifier.Parse(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), 15*time.Minute)

	tok, err := codec.Issue(testAccount())
	require.NoError(t, err)

	last := tok[len(tok)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := tok[:len(tok)-1] + string(flipped)

	_, err = codec.Parse(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), 15*time.Minute)

	for _, input := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := codec.Parse(input)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", input)
	}
}

func TestClaims_AccountID_Invalid(t *testing.T) {
	t.Parallel()

	claims := &Claims{}
	claims.Subject = "not-a-number"
	_, err := claims.AccountID()
	assert.ErrorIs(t, err, ErrTokenInvalid)

	claims.Subject = "0"
	_, err = claims.AccountID()
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
