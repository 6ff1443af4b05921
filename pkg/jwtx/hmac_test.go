package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-key"

func newTestService(t *testing.T) *HMACService {
	t.Helper()
	svc, err := NewHMAC("HS256", testSecret)
	require.NoError(t, err)
	return svc
}

func TestNewHMAC(t *testing.T) {
	t.Run("supported algorithms", func(t *testing.T) {
		for _, alg := range []string{"HS256", "HS384", "HS512"} {
			svc, err := NewHMAC(alg, testSecret)
			require.NoError(t, err)
			require.Equal(t, alg, svc.Alg())
		}
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := NewHMAC("HS256", "")
		require.Error(t, err)
	})

	t.Run("rejects non-HMAC algorithms", func(t *testing.T) {
		for _, alg := range []string{"RS256", "ES256", "EdDSA", "none", "bogus"} {
			_, err := NewHMAC(alg, testSecret)
			require.Error(t, err, "algorithm %s should be rejected", alg)
		}
	})
}

func TestSignVerify_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	sub := Subject{UserID: 42, Email: "user@example.com", RoleID: 3}
	claims := NewAccessClaims(sub, 30*time.Minute, "spendlog", time.Now().UTC())

	token, err := svc.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, sub, got.Subject, "claims must round-trip unchanged")
	require.Equal(t, "spendlog", got.Issuer)
}

func TestVerify_Expired(t *testing.T) {
	svc := newTestService(t)

	issuedAt := time.Now().UTC().Add(-time.Hour)
	claims := NewAccessClaims(Subject{UserID: 1, Email: "a@b.c", RoleID: 1}, 30*time.Minute, "spendlog", issuedAt)

	token, err := svc.Sign(claims)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_TTLBoundaries(t *testing.T) {
	svc := newTestService(t)

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claims := NewAccessClaims(Subject{UserID: 7, Email: "u@test.local", RoleID: 2}, 30*time.Minute, "spendlog", issuedAt)

	token, err := svc.Sign(claims)
	require.NoError(t, err)

	t.Run("valid one minute before expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
		got, err := svc.Verify(token)
		require.NoError(t, err)
		require.Equal(t, int64(7), got.Subject.UserID)
	})

	t.Run("expired one minute after expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
		_, err := svc.Verify(token)
		require.ErrorIs(t, err, ErrExpired)
	})
}

func TestVerify_TamperedSignature(t *testing.T) {
	svc := newTestService(t)

	claims := NewAccessClaims(Subject{UserID: 1, Email: "a@b.c", RoleID: 1}, 30*time.Minute, "spendlog", time.Now().UTC())
	token, err := svc.Sign(claims)
	require.NoError(t, err)

	// Flip a byte in the signature segment. The result must be malformed,
	// never expired and never valid claims.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	require.ErrorIs(t, err, ErrMalformed)
	require.NotErrorIs(t, err, ErrExpired)
}

func TestVerify_Garbage(t *testing.T) {
	svc := newTestService(t)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(raw)
		require.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := newTestService(t)
	other, err := NewHMAC("HS256", "a-different-secret")
	require.NoError(t, err)

	claims := NewAccessClaims(Subject{UserID: 1, Email: "a@b.c", RoleID: 1}, 30*time.Minute, "spendlog", time.Now().UTC())
	token, err := other.Sign(claims)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerify_MissingExpiry(t *testing.T) {
	svc := newTestService(t)

	// Hand-roll claims without exp; expiry is mandatory on verify.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Subject: Subject{UserID: 1, Email: "a@b.c", RoleID: 1},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerify_MissingSubjectFields(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		sub  Subject
	}{
		{"missing user id", Subject{Email: "a@b.c", RoleID: 3}},
		{"missing email", Subject{UserID: 1, RoleID: 3}},
		{"missing role id", Subject{UserID: 1, Email: "a@b.c"}},
		{"empty subject", Subject{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := NewAccessClaims(tt.sub, 30*time.Minute, "spendlog", time.Now().UTC())
			token, err := svc.Sign(claims)
			require.NoError(t, err)

			// Valid signature, unexpired: must still be rejected, and
			// distinguishably from a signature failure.
			_, err = svc.Verify(token)
			require.ErrorIs(t, err, ErrMissingFields)
			require.NotErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestVerify_AlgorithmConfusion(t *testing.T) {
	svc := newTestService(t)

	// A token signed with HS512 must not verify against a service pinned
	// to HS256, even with the right secret.
	other, err := NewHMAC("HS512", testSecret)
	require.NoError(t, err)

	claims := NewAccessClaims(Subject{UserID: 1, Email: "a@b.c", RoleID: 1}, 30*time.Minute, "spendlog", time.Now().UTC())
	token, err := other.Sign(claims)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrMalformed)
}
