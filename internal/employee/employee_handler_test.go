package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type listEnvelope struct {
	Data []employee.EmployeeResponse `json:"data"`
	Meta struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
	} `json:"meta"`
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := employee.NewHandler(svc, zap.NewNop())
	r.GET("/employees", h.GetAll)
	r.GET("/employees/options", h.GetOptions)
	r.GET("/employees/:id", h.GetByID)
	r.POST("/employees", h.Create)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	return r
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John", req.FirstName)
				return employee.EmployeeResponse{ID: uuid.NewString(), EmployeeCode: "EMP0001", FullName: "John Doe"}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees",
			strings.NewReader(`{"first_name":"John","last_name":"Doe","email":"john@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "EMP0001")
	})

	t.Run("invalid email", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees",
			strings.NewReader(`{"first_name":"John","last_name":"Doe","email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(&fakeEmployeeService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees",
			strings.NewReader(`{"first_name":"John","last_name":"Doe","email":"john@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: "1", EmployeeCode: "EMP0001", FullName: "Zara Khan", Email: "zara@example.com", DepartmentID: "d-eng", HireDate: "2021-04-01"},
				{ID: "2", EmployeeCode: "EMP0002", FullName: "Asha Rao", Email: "asha@example.com", DepartmentID: "d-fin"},
				{ID: "3", EmployeeCode: "EMP0003", FullName: "Ravi Kumar", Email: "ravi@example.com", DepartmentID: "d-eng", HireDate: "2019-11-15"},
			}, nil
		},
	}

	t.Run("sorted by name and paged", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?page=1&page_size=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body listEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(3), body.Meta.Total)
		if assert.Len(t, body.Data, 2) {
			assert.Equal(t, "Asha Rao", body.Data[0].FullName)
			assert.Equal(t, "Ravi Kumar", body.Data[1].FullName)
		}
	})

	t.Run("search by code", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?q=emp0003", nil))

		var body listEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		if assert.Len(t, body.Data, 1) {
			assert.Equal(t, "Ravi Kumar", body.Data[0].FullName)
		}
	})

	t.Run("filter by department", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?department_id=d-eng", nil))

		var body listEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(2), body.Meta.Total)
		if assert.Len(t, body.Data, 2) {
			assert.Equal(t, "Ravi Kumar", body.Data[0].FullName)
			assert.Equal(t, "Zara Khan", body.Data[1].FullName)
		}
	})

	t.Run("sort by hire date puts missing last", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?sort_by=hire_date", nil))

		var body listEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		if assert.Len(t, body.Data, 3) {
			assert.Equal(t, "3", body.Data[0].ID)
			assert.Equal(t, "1", body.Data[1].ID)
			assert.Equal(t, "2", body.Data[2].ID)
		}
	})

	t.Run("service error", func(t *testing.T) {
		failing := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("db down")
			},
		}
		w := httptest.NewRecorder()
		setupRouter(failing).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	svc := &fakeEmployeeService{
		GetOptionsFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{{ID: "1", FullName: "Asha Rao"}}, nil
		},
	}

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/options", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, got string) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, got)
				return employee.EmployeeResponse{ID: got}, nil
			},
		}
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+id, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, got string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+id, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_UpdateAndDelete(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeEmployeeService{
		UpdateFn: func(ctx context.Context, got string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{ID: got, FirstName: req.FirstName}, nil
		},
		DeleteFn: func(ctx context.Context, got string) error {
			return employeeerrors.ErrEmployeeHasSalaries
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/employees/"+id,
		strings.NewReader(`{"first_name":"Asha","last_name":"Rao","email":"asha@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
