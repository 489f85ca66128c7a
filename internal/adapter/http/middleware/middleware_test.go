package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quickgigs/internal/infrastructure/auth"
	"quickgigs/internal/infrastructure/ratelimit"

	"github.com/gin-gonic/gin"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenService("secret", time.Hour)
	valid, err := tokens.GenerateToken("user-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := gin.New()
	r.GET("/me", RequireAuth(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})

	tests := []struct {
		name   string
		header string
		want   int
		body   string
	}{
		{name: "valid token", header: "Bearer " + valid, want: http.StatusOK, body: "user-1"},
		{name: "lowercase scheme", header: "bearer " + valid, want: http.StatusOK, body: "user-1"},
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Fatalf("body = %q", w.Body.String())
			}
		})
	}
}

func TestRequireCallbackAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenService("secret", time.Hour)
	state, err := tokens.SignCallback("emp-1", "g1", time.Minute)
	if err != nil {
		t.Fatalf("SignCallback: %v", err)
	}
	otherGig, _ := tokens.SignCallback("emp-1", "g2", time.Minute)
	bearer, _ := tokens.GenerateToken("emp-1")

	r := gin.New()
	r.GET("/success/:gig_id", RequireCallbackAuth(tokens, tokens), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "state only", path: "/success/g1?session_id=cs_1&state=" + state, want: http.StatusOK},
		{name: "bearer only", path: "/success/g1", header: "Bearer " + bearer, want: http.StatusOK},
		{name: "state for another gig", path: "/success/g1?state=" + otherGig, want: http.StatusUnauthorized},
		{name: "bearer token as state", path: "/success/g1?state=" + bearer, want: http.StatusUnauthorized},
		{name: "state as bearer", path: "/success/g1", header: "Bearer " + state, want: http.StatusUnauthorized},
		{name: "nothing", path: "/success/g1", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.want == http.StatusOK && w.Body.String() != "emp-1" {
				t.Fatalf("body = %q", w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/apply", RateLimit(ratelimit.NewLocalLimiter(1, 1), "apply"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/apply", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusCreated || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes: %v", codes)
	}
}
