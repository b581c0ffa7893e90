package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupabaseRefresher_RequiresConfig(t *testing.T) {
	_, err := NewSupabaseRefresher("", "anon", time.Second)
	assert.ErrorIs(t, err, apperrors.ErrRefreshNotConfigured)

	_, err = NewSupabaseRefresher("https://proj.supabase.co", "", time.Second)
	assert.ErrorIs(t, err, apperrors.ErrRefreshNotConfigured)
}

func TestSupabaseRefresher_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "old-refresh", body["refresh_token"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"new-access","token_type":"bearer","expires_in":3600,"expires_at":1900000000,"refresh_token":"new-refresh"}`))
	}))
	defer server.Close()

	r, err := NewSupabaseRefresher(server.URL+"/", "anon-key", time.Second)
	require.NoError(t, err)

	tok, err := r.Refresh(t.Context(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tok.AccessToken)
	assert.Equal(t, "new-refresh", tok.RefreshToken)
	assert.Equal(t, time.Unix(1900000000, 0), tok.Expiry)
}

func TestSupabaseRefresher_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "rejected refresh token",
			status: http.StatusBadRequest,
			body:   `{"error":"invalid_grant"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsAuthentication(err))
			},
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			body:   `upstream down`,
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.IsUpstream(err))
				assert.Contains(t, err.Error(), "502")
			},
		},
		{
			name:   "empty access token",
			status: http.StatusOK,
			body:   `{"refresh_token":"x"}`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "no access token")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			r, err := NewSupabaseRefresher(server.URL, "anon-key", time.Second)
			require.NoError(t, err)

			_, err = r.Refresh(t.Context(), "rt")
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}
