package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quizdoc/internal/quiz"
)

func TestRouterHealthz(t *testing.T) {
	router := NewRouter(quiz.NewService(quiz.NewMemoryRepository()), Options{})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "{\"status\":\"ok\"}\n" {
		t.Fatalf("body = %q", body)
	}
}

func TestRouterUnknownRoutesAndMethods(t *testing.T) {
	router := NewRouter(quiz.NewService(quiz.NewMemoryRepository()), Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tests", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/test", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouterCORS(t *testing.T) {
	router := NewRouter(quiz.NewService(quiz.NewMemoryRepository()), Options{
		CORSOrigins: []string{"http://localhost:3000"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow origin for foreign site: %q", got)
	}
}
