package middleware

import (
	"acceluni_backend/internal/config"
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/util"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type revokedSet map[string]bool

func (r revokedSet) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return r[tokenID], nil
}

func newRouter(cfg *config.Config, sessions RevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": util.GetUserFromContext(c).UserID})
	})
	r.GET("/admin", AuthMiddleware(cfg, sessions), RoleMiddleware(model.Admin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func token(t *testing.T, cfg *config.Config, role model.UserRole) (string, *util.Claims) {
	t.Helper()
	user := &model.User{Email: "a@example.com", Role: role}
	user.ID = 7
	signed, claims, err := util.GenerateJWT(user, cfg.JWT.Secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return signed, claims
}

func do(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	w := do(newRouter(cfg, revokedSet{}), "/me", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got=%d want=401", w.Code)
	}
	var body util.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != util.CodeAuthenticationRequired || body.Redirect != "/login" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuthMiddlewareAcceptsValidAndRejectsRevoked(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	signed, claims := token(t, cfg, model.Learner)
	revoked := revokedSet{}
	r := newRouter(cfg, revoked)

	if w := do(r, "/me", signed); w.Code != http.StatusOK {
		t.Fatalf("valid token: got=%d body=%s", w.Code, w.Body.String())
	}
	if w := do(r, "/me", signed+"x"); w.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token: got=%d", w.Code)
	}

	revoked[claims.ID] = true
	if w := do(r, "/me", signed); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token: got=%d", w.Code)
	}
}

func TestRoleMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	r := newRouter(cfg, nil)

	learner, _ := token(t, cfg, model.Learner)
	if w := do(r, "/admin", learner); w.Code != http.StatusForbidden {
		t.Fatalf("learner on admin route: got=%d", w.Code)
	}
	admin, _ := token(t, cfg, model.Admin)
	if w := do(r, "/admin", admin); w.Code != http.StatusOK {
		t.Fatalf("admin route: got=%d", w.Code)
	}
}
