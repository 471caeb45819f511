package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestPreflightRequestIsAllowed(t *testing.T) {
	is := is.New(t)

	r := New("project-attributes")
	r.Post("/api/v0/entities/task", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/entities/task", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	is.True(w.Header().Get("Access-Control-Allow-Origin") != "")
	is.True(w.Code < http.StatusBadRequest)
}
