package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(utils.APIConfig{BaseURL: srv.URL + "/", TimeoutSeconds: 5}, zap.NewNop())
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	var out map[string]any
	if err := c.Get(context.Background(), "/movies/", "tok-123", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var sawHeader bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))

	var out map[string]any
	if err := c.Get(context.Background(), "/movies/", "", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if sawHeader {
		t.Error("anonymous request must not carry an Authorization header")
	}
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"movie not found"}`, http.StatusNotFound)
	}))

	err := c.Get(context.Background(), "/movies/nope", "", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAPIErrorCarriesUpstreamMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"email already registered"}`, http.StatusBadRequest)
	}))

	err := c.Post(context.Background(), "/auth/register", "", map[string]string{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "email already registered" {
		t.Errorf("unexpected api error: %+v", apiErr)
	}
}

func TestAPIErrorFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))

	err := c.Get(context.Background(), "/movies/", "", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("fallback message = %q", apiErr.Message)
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	// Point at a closed server
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(utils.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 1}, zap.NewNop())

	err := c.Get(context.Background(), "/movies/", "", nil)
	if err == nil {
		t.Fatal("expected a transport error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an APIError: %v", err)
	}
}

func TestContextCancellationAborts(t *testing.T) {
	block := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, "/movies/", "", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
