package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/domain"
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEnforcer struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		role       string
		allowed    bool
		err        error
		wantStatus int
	}{
		{name: "allowed", role: "ADMIN", allowed: true, wantStatus: http.StatusOK},
		{name: "denied", role: "EMPLOYEE", wantStatus: http.StatusForbidden},
		{name: "enforcer error", role: "ADMIN", err: errors.New("policy load"), wantStatus: http.StatusInternalServerError},
		{name: "no auth context", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enforcer := fakeEnforcer{enforceFn: func(req domain.EnforceRequest) (bool, error) {
				assert.Equal(t, tt.role, req.Role)
				assert.Equal(t, "salary", req.Resource)
				assert.Equal(t, "manage", req.Action)
				return tt.allowed, tt.err
			}}

			r := gin.New()
			r.DELETE("/salaries/:id", func(c *gin.Context) {
				if tt.role != "" {
					c.Set(middleware.ContextRole, tt.role)
				}
				c.Next()
			}, middleware.RBACAuthorize(enforcer, "salary", "manage"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/salaries/1", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
