//go:build unit

package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"library-platform/internal/infra/remote"
	"library-platform/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userURL, bookURL string, timeout time.Duration) *remote.Client {
	return remote.NewClient(config.RemoteConfig{
		UserServiceURL: userURL,
		BookServiceURL: bookURL,
		Timeout:        timeout,
	})
}

func TestFetchUser(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found: snapshot carries the display name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/"+id.String(), r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"` + id.String() + `","name":"Alice Johnson","email":"alice@example.com"}`))
		}))
		defer srv.Close()

		snap, err := newTestClient(srv.URL, srv.URL, time.Second).FetchUser(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, snap.ID)
		assert.Equal(t, "Alice Johnson", snap.Display)
	})

	t.Run("404 means the user does not exist", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		snap, err := newTestClient(srv.URL, srv.URL, time.Second).FetchUser(ctx, id)
		assert.Nil(t, snap)
		require.ErrorIs(t, err, remote.ErrNotFound)
	})

	t.Run("classification: everything else is unreachable", func(t *testing.T) {
		cases := []struct {
			name    string
			handler http.HandlerFunc
		}{
			{
				name: "500 response",
				handler: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
			},
			{
				name: "malformed body",
				handler: func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"name": "unterminated`))
				},
			},
			{
				name: "missing display field",
				handler: func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"id":"` + id.String() + `","email":"alice@example.com"}`))
				},
			},
			{
				name: "display field has the wrong type",
				handler: func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"name": 42}`))
				},
			},
			{
				name: "empty display field",
				handler: func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"name": ""}`))
				},
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				srv := httptest.NewServer(c.handler)
				defer srv.Close()

				snap, err := newTestClient(srv.URL, srv.URL, time.Second).FetchUser(ctx, id)
				assert.Nil(t, snap)
				require.ErrorIs(t, err, remote.ErrUnreachable)
				assert.NotErrorIs(t, err, remote.ErrNotFound)
			})
		}
	})

	t.Run("timeout is unreachable, not not-found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		snap, err := newTestClient(srv.URL, srv.URL, 20*time.Millisecond).FetchUser(ctx, id)
		assert.Nil(t, snap)
		require.ErrorIs(t, err, remote.ErrUnreachable)
	})

	t.Run("connection refused is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		snap, err := newTestClient(srv.URL, srv.URL, time.Second).FetchUser(ctx, id)
		assert.Nil(t, snap)
		require.ErrorIs(t, err, remote.ErrUnreachable)
	})
}

func TestFetchBook(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found: snapshot carries the title", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/books/"+id.String(), r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"` + id.String() + `","title":"The Go Programming Language","author":"Alan A. A. Donovan"}`))
		}))
		defer srv.Close()

		snap, err := newTestClient(srv.URL, srv.URL, time.Second).FetchBook(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, snap.ID)
		assert.Equal(t, "The Go Programming Language", snap.Display)
	})

	t.Run("a name field does not satisfy a book lookup", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name": "not a title"}`))
		}))
		defer srv.Close()

		snap, err := newTestClient(srv.URL, srv.URL, time.Second).FetchBook(ctx, id)
		assert.Nil(t, snap)
		require.ErrorIs(t, err, remote.ErrUnreachable)
	})
}
