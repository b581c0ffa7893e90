package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/logger"
	"joyjoy-locums-backend/internal/session"

	"golang.org/x/oauth2"
)

// Document is a compliance document row as stored by the marketplace
type Document struct {
	ID           string `json:"id"`
	OwnerID      string `json:"owner_id"`
	DocumentType string `json:"document_type"`
	Status       string `json:"status"`
	IssuedAt     string `json:"issued_at,omitempty"`
	FileName     string `json:"file_name,omitempty"`
}

// Client reads a locum's shifts and documents from the marketplace REST API
// on behalf of the session found in the request context.
type Client struct {
	baseURL *url.URL
	apiKey  string
	timeout time.Duration
	// base is the transport under the oauth2 layer; tests swap it out
	base *http.Client
}

// NewClient creates a marketplace client. apiKey is sent as the apikey header when set.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, apperrors.ErrUpstreamNotConfigured
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL '%s': %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: u,
		apiKey:  apiKey,
		timeout: timeout,
		base:    &http.Client{},
	}, nil
}

// ListShifts returns the locum's shifts as raw JSON objects, one per shift,
// for the shift normalizer to validate individually.
func (c *Client) ListShifts(ctx context.Context, locumID string) ([]json.RawMessage, error) {
	if locumID == "" {
		return nil, apperrors.NewValidationError("locum_id", "is required")
	}
	q := url.Values{}
	q.Set("locum_id", locumID)

	var shifts []json.RawMessage
	if err := c.getJSON(ctx, "/shifts", q, &shifts); err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	return shifts, nil
}

// ListDocuments returns the compliance documents uploaded by ownerID
func (c *Client) ListDocuments(ctx context.Context, ownerID string) ([]Document, error) {
	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner_id", "is required")
	}
	q := url.Values{}
	q.Set("owner_id", ownerID)

	var docs []Document
	if err := c.getJSON(ctx, "/documents", q, &docs); err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	return docs, nil
}

// httpClient builds a client that authenticates with the session's bearer token,
// refreshing it when expired.
func (c *Client) httpClient(ctx context.Context) (*http.Client, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, apperrors.ErrMissingSession
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.base)
	return oauth2.NewClient(ctx, sess), nil
}

// getJSON performs an authenticated GET request and decodes JSON into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	client, err := c.httpClient(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fullURL := c.baseURL.String() + path + "?" + query.Encode()
	logger.WithContext(ctx).Debugf("Invoking marketplace API GET %s", path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return mapStatus(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode marketplace response: %w", err)
	}
	return nil
}

func mapStatus(status int, body string) error {
	switch status {
	case http.StatusUnauthorized:
		return apperrors.NewAuthenticationError("marketplace rejected the session token")
	case http.StatusForbidden:
		return apperrors.NewAuthorizationError("marketplace denied access")
	default:
		return apperrors.NewUpstreamError(status, body)
	}
}

// mapTransportError keeps session and context errors intact; anything else is
// the upstream being unreachable.
func mapTransportError(err error) error {
	var sessErr *apperrors.AuthenticationError
	switch {
	case errors.As(err, &sessErr):
		return sessErr
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", apperrors.ErrUpstreamUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
}
