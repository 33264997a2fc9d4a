package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/agencyhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"

	valid, err := SignOwnerToken(secret, "owner-7", time.Hour)
	if err != nil {
		t.Fatalf("SignOwnerToken: %v", err)
	}
	expired, err := SignOwnerToken(secret, "owner-7", -time.Minute)
	if err != nil {
		t.Fatalf("SignOwnerToken expired: %v", err)
	}
	foreign, err := SignOwnerToken("other-secret", "owner-7", time.Hour)
	if err != nil {
		t.Fatalf("SignOwnerToken foreign: %v", err)
	}
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign no-subject token: %v", err)
	}

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + valid, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
		{"no subject", "Bearer " + noSubject, http.StatusUnauthorized},
	}

	am := NewAuthMiddleware(logger.Nop(), secret)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(am.RequireAuth())
			var owner string
			r.GET("/api/me", func(c *gin.Context) {
				owner = ctxutil.OwnerID(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status: want=%d got=%d body=%s", tc.status, rec.Code, rec.Body.String())
			}
			if tc.status == http.StatusOK && owner != "owner-7" {
				t.Fatalf("owner: want=owner-7 got=%q", owner)
			}
		})
	}
}
