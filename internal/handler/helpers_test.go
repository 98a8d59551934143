package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubSupplierService returns canned values so the HTTP surface can be
// exercised without a database.
type stubSupplierService struct {
	createErr error
}

func (s *stubSupplierService) Create(_ context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.SupplierResponse{ID: 1, Name: req.Name}, nil
}

func (s *stubSupplierService) List(context.Context) ([]dto.SupplierResponse, error) {
	return []dto.SupplierResponse{}, nil
}

func (s *stubSupplierService) Update(_ context.Context, id uint, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	return &dto.SupplierResponse{ID: id, Name: req.Name}, nil
}

func (s *stubSupplierService) BulkDelete(_ context.Context, ids []uint) (int64, error) {
	return int64(len(ids)), nil
}

func newSupplierRouter(svc service.SupplierService) *gin.Engine {
	r := gin.New()
	h := NewSuppliersHandler(svc)
	r.POST("/suppliers", h.Create)
	r.PUT("/suppliers/:id", h.Update)
	r.POST("/suppliers/bulk-delete", h.BulkDelete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSupplierValidation(t *testing.T) {
	r := newSupplierRouter(&stubSupplierService{})

	t.Run("valid request", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/suppliers", `{"name":"Acme Foods"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/suppliers", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/suppliers", `{"contact":"010-0000-0000"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Detail string            `json:"detail"`
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "required", body.Fields["Name"])
	})
}

func TestUpdateSupplierBadID(t *testing.T) {
	r := newSupplierRouter(&stubSupplierService{})
	w := doJSON(t, r, "PUT", "/suppliers/abc", `{"name":"Acme Foods"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkDeleteValidation(t *testing.T) {
	r := newSupplierRouter(&stubSupplierService{})

	t.Run("empty id list", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/suppliers/bulk-delete", `{"ids":[]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("counts deletions", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/suppliers/bulk-delete", `{"ids":[1,2,3]}`)
		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.BulkDeleteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(3), body.Deleted)
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("%w: supplier 9", service.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: supplier \"Acme\"", service.ErrConflict), http.StatusConflict},
		{"unsupported format", fmt.Errorf("%w: orders.csv", service.ErrUnsupportedFormat), http.StatusUnsupportedMediaType},
		{"import failure", fmt.Errorf("%w: boom", service.ErrImportFailed), http.StatusInternalServerError},
		{"anything else", errors.New("invalid date"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newSupplierRouter(&stubSupplierService{createErr: tc.err})
			w := doJSON(t, r, "POST", "/suppliers", `{"name":"Acme Foods"}`)
			assert.Equal(t, tc.want, w.Code)

			var body struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Detail)
		})
	}
}
