package products

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	all    []domain.Product
	byIDs  []domain.Product
	gotIDs []string
	err    error
}

func (f *fakeProductService) List(_ context.Context) ([]domain.Product, error) {
	return f.all, f.err
}

func (f *fakeProductService) ListByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	f.gotIDs = ids
	return f.byIDs, f.err
}

func newTestRouter(svc *fakeProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	New(svc, log).RegisterRoutes(router)
	return router
}

func TestListAllProducts(t *testing.T) {
	svc := &fakeProductService{
		all: []domain.Product{
			{ID: "PROD_UF001", Name: "星光能量水瓶"},
			{ID: "PROD_UF002", Name: "月相環保托特包"},
		},
	}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []domain.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 2)
}

func TestListProductsByIDs(t *testing.T) {
	svc := &fakeProductService{
		byIDs: []domain.Product{{ID: "PROD_UF001"}},
	}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products?ids=PROD_UF001,%20PROD_UF002,", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Пробелы и пустые элементы в ids отбрасываются
	assert.Equal(t, []string{"PROD_UF001", "PROD_UF002"}, svc.gotIDs)
}

func TestListProductsFailure(t *testing.T) {
	router := newTestRouter(&fakeProductService{err: assert.AnError})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
