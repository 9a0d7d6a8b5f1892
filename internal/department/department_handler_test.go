package department_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/department"
	departmenterrors "go-payroll/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
		c.Request = httptest.NewRequest(method, target, reader)
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	return c, w
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}

		c, w := newContext(http.MethodPost, "/departments", `{"name":"HR"}`)
		department.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"HR"`)
	})

	t.Run("validation error", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/departments", `{}`)
		department.NewHandler(&fakeDepartmentService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNameTaken
			},
		}

		c, w := newContext(http.MethodPost, "/departments", `{"name":"HR"}`)
		department.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, errors.New("failed")
			},
		}

		c, w := newContext(http.MethodPost, "/departments", `{"name":"HR"}`)
		department.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	svc := &fakeDepartmentService{
		GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
			return []department.DepartmentResponse{{ID: uuid.New().String(), Name: "HR"}}, nil
		},
	}

	c, w := newContext(http.MethodGet, "/departments", "")
	department.NewHandler(svc).GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDepartmentHandler_GetByID(t *testing.T) {
	deptID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
				assert.Equal(t, deptID, id)
				return department.DepartmentResponse{ID: id, Name: "HR"}, nil
			},
		}

		c, w := newContext(http.MethodGet, "/departments/"+deptID, "")
		c.Params = []gin.Param{{Key: "id", Value: deptID}}
		department.NewHandler(svc).GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		}

		c, w := newContext(http.MethodGet, "/departments/"+deptID, "")
		c.Params = []gin.Param{{Key: "id", Value: deptID}}
		department.NewHandler(svc).GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDepartmentHandler_Update(t *testing.T) {
	deptID := uuid.New().String()
	svc := &fakeDepartmentService{
		UpdateFn: func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
			return department.DepartmentResponse{ID: id, Name: req.Name}, nil
		},
	}

	c, w := newContext(http.MethodPut, "/departments/"+deptID, `{"name":"Finance"}`)
	c.Params = []gin.Param{{Key: "id", Value: deptID}}
	department.NewHandler(svc).Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDepartmentHandler_Delete(t *testing.T) {
	deptID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, deptID, id)
				return nil
			},
		}

		c, w := newContext(http.MethodDelete, "/departments/"+deptID, "")
		c.Params = []gin.Param{{Key: "id", Value: deptID}}
		department.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("in use", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, id string) error {
				return departmenterrors.ErrDepartmentInUse
			},
		}

		c, w := newContext(http.MethodDelete, "/departments/"+deptID, "")
		c.Params = []gin.Param{{Key: "id", Value: deptID}}
		department.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
