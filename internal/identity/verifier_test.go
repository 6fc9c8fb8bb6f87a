package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noticias-pt/news-api/domain"
)

func TestVerify_ResolvesFirstUser(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[{"email":"a@x.com","uid":"123"},{"email":"b@x.com"}]}`))
	}))
	defer srv.Close()

	v := NewVerifier(srv.URL, time.Second)
	id, err := v.Verify(context.Background(), "the-token")

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", id.Email)
	assert.Equal(t, "the-token", gotBody["token"])
}

func TestVerify_EmptyUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users":[]}`))
	}))
	defer srv.Close()

	v := NewVerifier(srv.URL, time.Second)
	_, err := v.Verify(context.Background(), "the-token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	v := NewVerifier(srv.URL, time.Second)
	_, err := v.Verify(context.Background(), "the-token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users":`))
	}))
	defer srv.Close()

	v := NewVerifier(srv.URL, time.Second)
	_, err := v.Verify(context.Background(), "the-token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_ProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := NewVerifier(srv.URL, time.Second)
	_, err := v.Verify(context.Background(), "the-token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	v := NewVerifier(srv.URL, time.Second)
	for range 10 {
		_, err := v.Verify(context.Background(), "the-token")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}

	// Once open, the breaker sheds calls instead of hammering the provider.
	assert.Less(t, hits, 10)
}
