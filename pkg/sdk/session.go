package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Session is an authenticated handle on the API. Tokens are short-lived and
// not refreshable; when one expires the caller logs in again.
type Session struct {
	client *Client
	token  string
	user   UserData
}

func newSession(c *Client, token string, user UserData) *Session {
	return &Session{client: c, token: token, user: user}
}

// Token returns the raw access token, for callers that need to store it.
func (s *Session) Token() string { return s.token }

// User returns the identity the session was established as.
func (s *Session) User() UserData { return s.user }

func (s *Session) doAuthRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// call marshals an optional payload, performs an authenticated request and
// decodes the envelope into out.
func (s *Session) call(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	resp, err := s.doAuthRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, out)
}

// callEnvelope is like call but hands back the whole envelope, for the few
// endpoints where the message itself carries the outcome.
func (s *Session) callEnvelope(ctx context.Context, method, path string, payload any) (Envelope, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Envelope{}, err
		}
		body = bytes.NewReader(raw)
	}

	resp, err := s.doAuthRequest(ctx, method, path, body)
	if err != nil {
		return Envelope{}, err
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success {
		return env, &APIError{StatusCode: env.StatusCode, Message: env.Message}
	}
	return env, nil
}
