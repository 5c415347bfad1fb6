package middleware

import (
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testSecret = "middleware-test-secret-with-enough-length"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	jwtCfg := &config.JWTConfig{Secret: testSecret, ExpireTime: time.Hour}
	r.GET("/me", AuthMiddleware(jwtCfg), func(c *gin.Context) {
		util.Success(c, util.GetUserFromContext(c).UserID)
	})
	r.GET("/teacher", AuthMiddleware(jwtCfg), RoleMiddleware(model.Teacher), func(c *gin.Context) {
		util.Success(c, "ok")
	})
	return r
}

func token(t *testing.T, userID uint, role model.UserRole, secret string) string {
	t.Helper()
	tok, err := util.GenerateJWT(userID, role, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	return tok
}

func do(r *gin.Engine, path, header string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	if code := do(r, "/me", ""); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
	if code := do(r, "/me", "Bearer "+token(t, 1, model.Student, "wrong-secret")); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with foreign signature, got %d", code)
	}
	if code := do(r, "/me", "Bearer "+token(t, 1, model.Student, testSecret)); code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", code)
	}
	if code := do(r, "/me?token="+token(t, 1, model.Student, testSecret), ""); code != http.StatusOK {
		t.Fatalf("expected query token to be accepted, got %d", code)
	}
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter()

	cases := []struct {
		role model.UserRole
		want int
	}{
		{model.Student, http.StatusForbidden},
		{model.Teacher, http.StatusOK},
		{model.Admin, http.StatusOK},
	}
	for _, tc := range cases {
		if code := do(r, "/teacher", "Bearer "+token(t, 2, tc.role, testSecret)); code != tc.want {
			t.Fatalf("role %s: expected %d, got %d", tc.role, tc.want, code)
		}
	}
}
