package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/logger"

	"golang.org/x/oauth2"
)

// Refresher exchanges a refresh token for a new token pair
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// SupabaseRefresher calls the Supabase auth server's refresh_token grant
type SupabaseRefresher struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewSupabaseRefresher creates a refresher for a Supabase project
func NewSupabaseRefresher(baseURL, anonKey string, timeout time.Duration) (*SupabaseRefresher, error) {
	if baseURL == "" || anonKey == "" {
		return nil, apperrors.ErrRefreshNotConfigured
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SupabaseRefresher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type supabaseTokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
}

// Refresh performs POST /auth/v1/token?grant_type=refresh_token
func (r *SupabaseRefresher) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, fmt.Errorf("failed to encode refresh request: %w", err)
	}

	url := r.baseURL + "/auth/v1/token?grant_type=refresh_token"
	logger.WithContext(ctx).Debug("Refreshing Supabase session")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("apikey", r.anonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return nil, apperrors.NewAuthenticationError("refresh token was rejected")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, apperrors.NewUpstreamError(resp.StatusCode, string(msg))
	}

	var out supabaseTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("refresh response has no access token")
	}

	tok := &oauth2.Token{
		AccessToken:  out.AccessToken,
		TokenType:    out.TokenType,
		RefreshToken: out.RefreshToken,
	}
	switch {
	case out.ExpiresAt > 0:
		tok.Expiry = time.Unix(out.ExpiresAt, 0)
	case out.ExpiresIn > 0:
		tok.Expiry = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	return tok, nil
}
