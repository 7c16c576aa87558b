package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(tokens *Tokens) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Middleware(tokens), func(c *gin.Context) {
		userID, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "admin": IsAdmin(c)})
	})
	return r
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokens("a_long_enough_test_secret", time.Hour)
	valid, err := tokens.GenerateToken("u1", []string{"admin"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "missing bearer token"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "missing bearer token"},
		{"invalid token", "Bearer nope", http.StatusUnauthorized, "invalid token"},
		{"valid token", "Bearer " + valid, http.StatusOK, `"userId":"u1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r := newGuardedRouter(tokens)
			request := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, request)

			req.Equal(tt.wantStatus, w.Code)
			req.Contains(w.Body.String(), tt.wantBody)
		})
	}
}
