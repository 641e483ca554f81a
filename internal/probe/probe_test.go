package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/draining":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(2 * time.Second)
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		assert.NoError(t, Check(ctx, client, srv.URL+"/ok"))
	})

	t.Run("unavailable", func(t *testing.T) {
		err := Check(ctx, client, srv.URL+"/draining")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 503")
	})

	t.Run("not found", func(t *testing.T) {
		err := Check(ctx, client, srv.URL+"/nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 404")
	})

	t.Run("bad url", func(t *testing.T) {
		err := Check(ctx, client, "://missing-scheme")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "build request")
	})
}

func TestCheck_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := Check(context.Background(), NewClient(time.Second), url)
	assert.Error(t, err)
}

func TestCheck_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := Check(ctx, NewClient(5*time.Second), srv.URL)
	assert.Error(t, err)
}
