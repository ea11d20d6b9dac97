package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia/academy-backend/internal/config"
	"github.com/harmonia/academy-backend/internal/service"
)

func newGatedRouter(t *testing.T, tokens *service.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims["email"]})
	})
	return r
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	tokens := service.NewTokenService(&config.Config{JWTSecret: "s", JWTExpiry: time.Hour})
	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !body.Error {
		t.Error("expected error:true in 401 body")
	}
	if body.Message != "unauthorized access" {
		t.Errorf("message = %q, want %q", body.Message, "unauthorized access")
	}
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	tokens := service.NewTokenService(&config.Config{JWTSecret: "s", JWTExpiry: time.Hour})
	r := newGatedRouter(t, tokens)

	headers := []string{
		"Bearer garbage",
		"Bearer ",
		"Basic abc123",
		"Bearer aaa.bbb.ccc",
	}
	for _, h := range headers {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", h)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Authorization %q: status = %d, want 401", h, w.Code)
		}
	}
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	expired := service.NewTokenService(&config.Config{JWTSecret: "s", JWTExpiry: -time.Minute})
	token, err := expired.Issue(map[string]interface{}{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tokens := service.NewTokenService(&config.Config{JWTSecret: "s", JWTExpiry: time.Hour})
	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthExposesClaims(t *testing.T) {
	tokens := service.NewTokenService(&config.Config{JWTSecret: "s", JWTExpiry: time.Hour})
	token, err := tokens.Issue(map[string]interface{}{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Email != "a@x.com" {
		t.Errorf("handler saw email %q, want a@x.com", body.Email)
	}
}
