package e2e_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/stretchr/testify/require"
)

// TestLoginSeededAccounts verifies every seeded account can log in and
// receives a token bound to its own identity.
func TestLoginSeededAccounts(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.NewClient(baseURL)

	for _, email := range []string{superAdminEmail, adminEmail, userEmail} {
		t.Run(email, func(t *testing.T) {
			session := loginSeeded(t, client, email)
			require.Equal(t, email, session.User().Email)
		})
	}
}

// TestLoginRejectsBadCredentials verifies wrong passwords and unknown
// accounts both fail with the same 401 so the response does not leak which
// emails exist.
func TestLoginRejectsBadCredentials(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.NewClient(baseURL)

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(t.Context(), adminEmail, "WrongPassword1!")
		assertAPIError(t, err, http.StatusUnauthorized, "Login with wrong password")
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := client.Login(t.Context(), "nobody@yopmail.com", "WrongPassword1!")
		assertAPIError(t, err, http.StatusUnauthorized, "Login with unknown account")
	})

	t.Run("both return the same message", func(t *testing.T) {
		_, errWrong := client.Login(t.Context(), adminEmail, "WrongPassword1!")
		_, errUnknown := client.Login(t.Context(), "nobody@yopmail.com", "WrongPassword1!")

		var apiWrong, apiUnknown *sdk.APIError
		require.ErrorAs(t, errWrong, &apiWrong)
		require.ErrorAs(t, errUnknown, &apiUnknown)
		require.Equal(t, apiWrong.Message, apiUnknown.Message)
	})
}

// TestSecuredRoutesRequireToken verifies secured routes reject requests
// without a token or with a forged token.
func TestSecuredRoutesRequireToken(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	t.Run("no token", func(t *testing.T) {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, baseURL+"/v1/roles", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, baseURL+"/v1/roles", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer not.a.token")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

// TestLoginRateLimit verifies the default rate limit on the login endpoint
// kicks in under a burst of bad attempts.
func TestLoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := sdk.NewClient(baseURL)

	sawTooMany := false
	for i := 0; i < 30; i++ {
		_, err := client.Login(t.Context(), adminEmail, "WrongPassword1!")
		var apiErr *sdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			sawTooMany = true
			break
		}
	}

	require.True(t, sawTooMany, "Expected a 429 within 30 rapid bad logins")
}
