package netx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutPresigned(t *testing.T) {
	file := []byte("hello, s3")

	t.Run("success", func(t *testing.T) {
		var gotBody []byte
		var gotCT, gotMethod string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		err := PutPresigned(context.Background(), ts.Client(), ts.URL+"/u1/a.txt?X-Amz-Signature=abc", "text/plain", file)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "text/plain", gotCT)
		assert.Equal(t, file, gotBody)
	})

	t.Run("empty content type falls back to octet-stream", func(t *testing.T) {
		var gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCT = r.Header.Get("Content-Type")
		}))
		defer ts.Close()

		require.NoError(t, PutPresigned(context.Background(), nil, ts.URL, "", file))
		assert.Equal(t, "application/octet-stream", gotCT)
	})

	t.Run("non-200", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("AccessDenied"))
		}))
		defer ts.Close()

		err := PutPresigned(context.Background(), ts.Client(), ts.URL, "", file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upload failed: 403")
		assert.Contains(t, err.Error(), "AccessDenied")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		require.Error(t, PutPresigned(context.Background(), nil, ts.URL, "", file))
	})
}

func TestGetPresigned(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte("payload"))
		}))
		defer ts.Close()

		got, err := GetPresigned(context.Background(), ts.Client(), ts.URL)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(got))
	})

	t.Run("not found", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		defer ts.Close()

		_, err := GetPresigned(context.Background(), ts.Client(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download failed: 404")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := GetPresigned(ctx, ts.Client(), ts.URL)
		require.Error(t, err)
	})
}
