package cryptox

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 70)},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.True(t, strings.HasPrefix(hash, "$2"),
				"hash should be in bcrypt modular crypt format")
			require.True(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := HashPassword(password)
	require.NoError(t, err)

	hash2, err := HashPassword(password)
	require.NoError(t, err)

	// Each hash should be different due to unique salts; both must verify.
	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.True(t, VerifyPassword(password, hash1))
	require.True(t, VerifyPassword(password, hash2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	require.False(t, VerifyPassword("battery-staple", hash))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"empty digest", ""},
		{"garbage digest", "not-a-bcrypt-hash"},
		{"truncated digest", "$2a$10$abc"},
		{"wrong scheme", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must return false, never panic.
			require.False(t, VerifyPassword("whatever", tt.digest))
		})
	}
}

func TestVerifyPassword_Concurrent(t *testing.T) {
	hash, err := HashPassword("concurrent-check")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 5 {
				require.True(t, VerifyPassword("concurrent-check", hash))
				require.False(t, VerifyPassword("wrong", hash))
			}
		}()
	}
	wg.Wait()
}
