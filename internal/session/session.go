package session

import (
	"context"
	"fmt"
	"sync"

	apperrors "joyjoy-locums-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// Claims are the fields the gateway reads from a Supabase access token
type Claims struct {
	Email        string         `json:"email,omitempty" example:"locum@example.com"`
	Role         string         `json:"role,omitempty" example:"authenticated"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the Supabase user id carried in the subject claim
func (c *Claims) UserID() string {
	return c.Subject
}

// ProfessionalRole returns the locum's role from user metadata, if set at sign-up
func (c *Claims) ProfessionalRole() string {
	if c.UserMetadata == nil {
		return ""
	}
	role, _ := c.UserMetadata["professional_role"].(string)
	return role
}

// ParseClaims decodes token claims without verifying the signature.
// Use it only on tokens that were verified on the way in or came from the auth server.
func ParseClaims(accessToken string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token claims: %w", err)
	}
	return claims, nil
}

// Session is one signed-in user's credentials. It replaces a process-wide auth
// store: callers hold it explicitly or carry it in a context. Safe for concurrent use.
type Session struct {
	mu          sync.RWMutex
	token       *oauth2.Token
	claims      *Claims
	invalidated bool

	refresher Refresher
	group     singleflight.Group
}

// New creates a session from a token pair. refresher may be nil, in which
// case the session stops working once the access token expires.
func New(accessToken, refreshToken string, refresher Refresher) (*Session, error) {
	claims, err := ParseClaims(accessToken)
	if err != nil {
		return nil, err
	}
	return FromClaims(accessToken, refreshToken, claims, refresher), nil
}

// FromClaims creates a session from an access token whose claims are already known
func FromClaims(accessToken, refreshToken string, claims *Claims, refresher Refresher) *Session {
	tok := &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
	}
	if claims != nil && claims.ExpiresAt != nil {
		tok.Expiry = claims.ExpiresAt.Time
	}
	return &Session{token: tok, claims: claims, refresher: refresher}
}

// Claims returns the claims of the current access token, nil once invalidated
func (s *Session) Claims() *Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

// UserID returns the current user's id, empty once invalidated
func (s *Session) UserID() string {
	if c := s.Claims(); c != nil {
		return c.UserID()
	}
	return ""
}

// Invalidated reports whether Invalidate has been called
func (s *Session) Invalidated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invalidated
}

// Token implements oauth2.TokenSource. An expired token is refreshed first.
func (s *Session) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	if s.invalidated {
		s.mu.RUnlock()
		return nil, apperrors.ErrSessionInvalidated
	}
	tok := *s.token
	s.mu.RUnlock()

	if tok.Valid() {
		return &tok, nil
	}
	if s.refresher == nil || tok.RefreshToken == "" {
		return nil, apperrors.ErrTokenExpired
	}
	return s.Refresh(context.Background())
}

// Refresh exchanges the refresh token for a new token pair. Concurrent calls
// share a single exchange with the auth server.
func (s *Session) Refresh(ctx context.Context) (*oauth2.Token, error) {
	s.mu.RLock()
	if s.invalidated {
		s.mu.RUnlock()
		return nil, apperrors.ErrSessionInvalidated
	}
	refreshToken := s.token.RefreshToken
	s.mu.RUnlock()

	if refreshToken == "" {
		return nil, apperrors.ErrNoRefreshToken
	}
	if s.refresher == nil {
		return nil, apperrors.ErrRefreshNotConfigured
	}

	// The exchange is shared, so one caller giving up must not cancel it for the rest.
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan("refresh", func() (interface{}, error) {
		return s.refresh(shared, refreshToken)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		tok := *res.Val.(*oauth2.Token)
		return &tok, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Session) refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	tok, err := s.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}
	claims, err := ParseClaims(tok.AccessToken)
	if err != nil {
		return nil, err
	}
	if tok.Expiry.IsZero() && claims.ExpiresAt != nil {
		tok.Expiry = claims.ExpiresAt.Time
	}
	// Supabase rotates refresh tokens, but keep the old one if none came back.
	if tok.RefreshToken == "" {
		tok.RefreshToken = refreshToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invalidated {
		return nil, apperrors.ErrSessionInvalidated
	}
	s.token = tok
	s.claims = claims
	return tok, nil
}

// Invalidate drops the credentials. Every later Token or Refresh call fails,
// including a refresh already in flight.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated = true
	s.token = &oauth2.Token{}
	s.claims = nil
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, if any
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
