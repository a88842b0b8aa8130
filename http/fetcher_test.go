package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/pagescrape"
	pshttp "github.com/fwojciec/pagescrape/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and content type from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := pshttp.NewFetcher()

		doc, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(doc.Body))
		assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)
		assert.Equal(t, http.StatusOK, doc.StatusCode)
	})

	t.Run("sends user agent and accept headers", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		fetcher := pshttp.NewFetcher(pshttp.WithUserAgent("test-agent/2"))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		h := <-headers
		assert.Equal(t, "test-agent/2", h.Get("User-Agent"))
		assert.Contains(t, h.Get("Accept"), "text/html")
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		doc, err := pshttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNonAuthoritativeInfo, doc.StatusCode)
	})

	t.Run("follows redirects and reports final URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>moved</html>"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		doc, err := pshttp.NewFetcher().Fetch(context.Background(), server.URL+"/old")
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/new", doc.URL)
		assert.Equal(t, "<html>moved</html>", string(doc.Body))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := pshttp.NewFetcher(pshttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, pagescrape.ENETWORK, pagescrape.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := pshttp.NewFetcher().Fetch(ctx, server.URL)
		require.Error(t, err)
		assert.Equal(t, pagescrape.ENETWORK, pagescrape.ErrorCode(err))
	})

	t.Run("returns network error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := pshttp.NewFetcher(pshttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, pagescrape.ENETWORK, pagescrape.ErrorCode(err))
	})

	t.Run("returns network error for refused connection", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		addr := server.URL
		server.Close()

		_, err := pshttp.NewFetcher().Fetch(context.Background(), addr)
		require.Error(t, err)
		assert.Equal(t, pagescrape.ENETWORK, pagescrape.ErrorCode(err))
	})

	t.Run("returns HTTP error with status code for non-2xx", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		_, err := pshttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, pagescrape.EHTTP, pagescrape.ErrorCode(err))
		assert.Equal(t, http.StatusNotFound, pagescrape.HTTPStatus(err))
		assert.Contains(t, pagescrape.ErrorMessage(err), "404")
	})

	t.Run("returns HTTP error for server errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := pshttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, pagescrape.HTTPStatus(err))
	})

	t.Run("rejects bodies larger than the limit", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 32)))
		}))
		defer server.Close()

		fetcher := pshttp.NewFetcher(pshttp.WithMaxBodyBytes(16))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, pagescrape.EPARSE, pagescrape.ErrorCode(err))
	})

	t.Run("accepts body exactly at the limit", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 16)))
		}))
		defer server.Close()

		fetcher := pshttp.NewFetcher(pshttp.WithMaxBodyBytes(16))

		doc, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, doc.Body, 16)
	})
}

func TestNewFetcherFromConfig(t *testing.T) {
	t.Parallel()

	agents := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	cfg := pagescrape.DefaultConfig()
	cfg.UserAgent = "from-config"

	_, err := pshttp.NewFetcherFromConfig(cfg).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "from-config", <-agents)
}
