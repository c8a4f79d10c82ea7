package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/nurpe/rentals-service/internal/model"
)

type stubParser map[string]model.Principal

func (s stubParser) Parse(token string) (model.Principal, error) {
	if p, ok := s[token]; ok {
		return p, nil
	}
	return model.Principal{}, errors.New("bad token")
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.GET("/protected", func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID, "role": principal.Role})
	})
	return router
}

func TestAuth(t *testing.T) {
	parser := stubParser{"good": {UserID: 42, Role: model.RoleAdmin}}
	router := newRouter(Auth(parser))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"user_id":42`)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	driverID := int64(3)
	parser := stubParser{
		"admin":  {UserID: 1, Role: model.RoleAdmin},
		"driver": {UserID: 2, Role: model.RoleDriver, DriverID: &driverID},
	}
	router := newRouter(Auth(parser), RequireRole(model.RoleAdmin))

	for token, status := range map[string]int{"admin": http.StatusOK, "driver": http.StatusForbidden} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, status, w.Code, token)
	}

	w := httptest.NewRecorder()
	newRouter(RequireRole(model.RoleAdmin)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	router := newRouter(RequestID(), Logger(zerolog.New(&buf)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, buf.String(), generated)
	assert.Contains(t, buf.String(), `"status":418`)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
