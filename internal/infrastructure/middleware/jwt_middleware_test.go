package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/jwt"
)

func newAuthedEngine(optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	mw := JWTAuth()
	if optional {
		mw = OptionalAuth()
	}
	engine.GET("/whoami", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("user_id")})
	})
	return engine
}

func TestJWTAuthBearerHeader(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	engine := newAuthedEngine(false)

	token, err := jwt.GenerateAccessToken("U_alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, "U_alice") {
		t.Errorf("caller identity missing: %s", body)
	}
}

func TestJWTAuthCookieFallback(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	engine := newAuthedEngine(false)

	token, err := jwt.GenerateAccessToken("U_alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	engine := newAuthedEngine(false)

	// No credentials at all.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	// Garbage bearer token.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", w.Code)
	}

	// A refresh token is not an access token.
	refresh, _, err := jwt.GenerateRefreshToken("U_alice")
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("refresh token: status = %d, want 401", w.Code)
	}
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	engine := newAuthedEngine(true)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"userId":""`) {
		t.Errorf("anonymous caller should have no identity: %s", body)
	}

	// With a token, the identity is resolved.
	token, err := jwt.GenerateAccessToken("U_alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if body := w.Body.String(); !strings.Contains(body, "U_alice") {
		t.Errorf("identity not resolved: %s", body)
	}
}
