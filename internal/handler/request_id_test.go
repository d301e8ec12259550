package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, requestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" || w.Header().Get(requestIDHeader) != "abc-123" {
		t.Fatalf("expected incoming id to be kept, got body=%q header=%q", w.Body.String(), w.Header().Get(requestIDHeader))
	}

	for _, incoming := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		if incoming != "" {
			req.Header.Set(requestIDHeader, incoming)
		}
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if _, err := uuid.Parse(w.Body.String()); err != nil {
			t.Fatalf("expected generated uuid, got %q", w.Body.String())
		}
	}
}

func TestRequestIDWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := requestID(c); got != "-" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}
