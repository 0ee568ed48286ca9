package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/postboard/internal/posts"
	"github.com/ziadkadry99/postboard/internal/posts/poststest"
	"github.com/ziadkadry99/postboard/internal/views"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()

	upstream := poststest.NewServer(30)
	t.Cleanup(upstream.Close)

	client := posts.NewClient(posts.ClientConfig{BaseURL: upstream.URL, Timeout: 5 * time.Second})
	v, err := views.New(client, views.Options{Title: "Posts"})
	if err != nil {
		t.Fatalf("views.New: %v", err)
	}
	return New(cfg, v)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})
	h := srv.Handler()

	tests := []struct {
		path string
		want int
	}{
		{"/", http.StatusSeeOther},
		{"/?_limit=10&_page=1", http.StatusOK},
		{"/post/1", http.StatusOK},
		{"/post/31", http.StatusNotFound},
		{"/api/posts?_limit=5&_page=2", http.StatusOK},
		{"/api/posts/2", http.StatusOK},
		{"/some/unknown/path", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("GET %s: expected %d, got %d", tt.path, tt.want, w.Code)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, Config{})
	h := srv.Handler()

	// One page render so the view and upstream series exist.
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/?_limit=10&_page=1", nil))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, name := range []string{"postboard_view_renders_total", "postboard_upstream_requests_total"} {
		if !strings.Contains(w.Body.String(), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("pong")) })
}

func TestNewMountsFeatures(t *testing.T) {
	srv := New(Config{}, pingRoutes{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	if w.Body.String() != "pong" {
		t.Errorf("got %q, want pong", w.Body.String())
	}
	if srv.ServerConfig().ServiceName != "postboard" {
		t.Errorf("default service name = %q", srv.ServerConfig().ServiceName)
	}
}
