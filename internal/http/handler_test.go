package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	gohttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/config"
	"github.com/wingscafe/inventory/internal/model"
	"github.com/wingscafe/inventory/internal/service"
	"github.com/wingscafe/inventory/internal/session"
	"github.com/wingscafe/inventory/pkg/validator"
)

type stubCatalogSvc struct {
	listAllProductsFn func(ctx context.Context) ([]model.Product, error)
	createProductFn   func(ctx context.Context, params service.CreateProductParams) (model.Product, error)
}

func (s *stubCatalogSvc) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.listAllProductsFn(ctx)
}

func (s *stubCatalogSvc) CreateProduct(ctx context.Context, params service.CreateProductParams) (model.Product, error) {
	return s.createProductFn(ctx, params)
}

func (s *stubCatalogSvc) UpdateProduct(context.Context, uuid.UUID, service.UpdateProductParams) (model.Product, error) {
	return model.Product{}, apperr.ProductNotFoundErr
}

func (s *stubCatalogSvc) DeleteProduct(context.Context, uuid.UUID) error {
	return apperr.ProductNotFoundErr
}

func (s *stubCatalogSvc) ProductOptions() []service.ProductOption {
	return []service.ProductOption{{Name: "Eggs", Category: "Food", Price: 60}}
}

type stubStockSvc struct {
	sellFn func(ctx context.Context, productID uuid.UUID, quantity int) (service.SellResult, error)
}

func (s *stubStockSvc) ListAllStockRecords(context.Context) ([]model.StockRecord, error) {
	return nil, nil
}

func (s *stubStockSvc) AddStock(context.Context, string, int) (model.StockRecord, error) {
	return model.StockRecord{}, nil
}

func (s *stubStockSvc) ReduceStock(context.Context, string, int) (model.StockRecord, error) {
	return model.StockRecord{}, apperr.StockRecordNotFoundErr
}

func (s *stubStockSvc) Sell(ctx context.Context, productID uuid.UUID, quantity int) (service.SellResult, error) {
	return s.sellFn(ctx, productID, quantity)
}

type stubUserSvc struct{}

func (s *stubUserSvc) ListAllUsers(context.Context) ([]model.User, error) { return nil, nil }

func (s *stubUserSvc) RegisterUser(context.Context, service.RegisterUserParams) (model.User, error) {
	return model.User{}, apperr.EmailTakenErr
}

func (s *stubUserSvc) UpdateUser(context.Context, uuid.UUID, service.UpdateUserParams) (model.User, error) {
	return model.User{}, apperr.UserNotFoundErr
}

func (s *stubUserSvc) DeleteUser(context.Context, uuid.UUID) error { return nil }

type stubAuthSvc struct {
	loginFn func(ctx context.Context, email, password string) error
}

func (s *stubAuthSvc) Login(ctx context.Context, email, password string) error {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthSvc) Logout() {}

func (s *stubAuthSvc) SessionState() session.State { return session.Anonymous }

func newTestRouter(t *testing.T, catalogSvc service.CatalogService, stockSvc service.StockService, authSvc service.AuthService) chi.Router {
	t.Helper()

	validate, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	svc := New(
		config.HTTP{Port: 0},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		catalogSvc,
		stockSvc,
		&stubUserSvc{},
		authSvc,
		service.NewSalesAggregator(),
		validate,
	)

	r := chi.NewRouter()
	svc.RegisterHandlers(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestProductRoutes(t *testing.T) {
	catalogSvc := &stubCatalogSvc{
		listAllProductsFn: func(context.Context) ([]model.Product, error) {
			return []model.Product{{Name: "Pizza", Price: 156, Quantity: 3}}, nil
		},
		createProductFn: func(_ context.Context, params service.CreateProductParams) (model.Product, error) {
			return model.Product{ID: uuid.New(), Name: params.Name}, nil
		},
	}
	r := newTestRouter(t, catalogSvc, &stubStockSvc{}, &stubAuthSvc{})

	t.Run("Should list products", func(t *testing.T) {
		resp := doJSON(t, r, gohttp.MethodGet, "/api/v1/products", nil)

		assert.Equal(t, gohttp.StatusOK, resp.Code)

		var items []ProductResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Pizza", items[0].Name)
	})

	t.Run("Should reject a product without a name", func(t *testing.T) {
		resp := doJSON(t, r, gohttp.MethodPost, "/api/v1/products", CreateProductRequest{Price: 10})

		assert.Equal(t, gohttp.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "Name")
	})

	t.Run("Should reject a malformed product id", func(t *testing.T) {
		resp := doJSON(t, r, gohttp.MethodDelete, "/api/v1/products/not-a-uuid", nil)

		assert.Equal(t, gohttp.StatusBadRequest, resp.Code)
	})

	t.Run("Should list product options", func(t *testing.T) {
		resp := doJSON(t, r, gohttp.MethodGet, "/api/v1/products/options", nil)

		assert.Equal(t, gohttp.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Eggs")
	})

	t.Run("Should map a repository failure to service unavailable", func(t *testing.T) {
		failing := &stubCatalogSvc{
			listAllProductsFn: func(context.Context) ([]model.Product, error) {
				return nil, errors.New("connection refused")
			},
		}
		r := newTestRouter(t, failing, &stubStockSvc{}, &stubAuthSvc{})

		resp := doJSON(t, r, gohttp.MethodGet, "/api/v1/products", nil)

		assert.Equal(t, gohttp.StatusServiceUnavailable, resp.Code)
		assert.Contains(t, resp.Body.String(), apperr.StoreUnavailableCode)
	})
}

func TestStockRoutes(t *testing.T) {
	r := newTestRouter(t, &stubCatalogSvc{}, &stubStockSvc{}, &stubAuthSvc{})

	t.Run("Should return not found for an unknown record", func(t *testing.T) {
		resp := doJSON(t, r, gohttp.MethodPost, "/api/v1/stock/reduce", StockMovementRequest{
			ProductName: "Citrus",
			Quantity:    1,
		})

		assert.Equal(t, gohttp.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), apperr.StockRecordNotFoundCode)
	})

	t.Run("Should reject a movement without a product name", func(t *testing.T) {
		resp := doJSON(t, r, gohttp.MethodPost, "/api/v1/stock/add", StockMovementRequest{Quantity: 5})

		assert.Equal(t, gohttp.StatusBadRequest, resp.Code)
	})
}

func TestDashboardRoutes(t *testing.T) {
	t.Run("Should report stock status per product", func(t *testing.T) {
		catalogSvc := &stubCatalogSvc{
			listAllProductsFn: func(context.Context) ([]model.Product, error) {
				return []model.Product{
					{ID: uuid.New(), Name: "Pizza", Quantity: 3},
					{ID: uuid.New(), Name: "Beer", Quantity: 0},
				}, nil
			},
		}
		r := newTestRouter(t, catalogSvc, &stubStockSvc{}, &stubAuthSvc{})

		resp := doJSON(t, r, gohttp.MethodGet, "/api/v1/dashboard", nil)

		assert.Equal(t, gohttp.StatusOK, resp.Code)

		var dashboard DashboardResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &dashboard))
		require.Len(t, dashboard.StockLevels, 2)
		assert.Equal(t, "In Stock", dashboard.StockLevels[0].Status)
		assert.Equal(t, "Out of Stock", dashboard.StockLevels[1].Status)
		assert.Equal(t, 0.0, dashboard.TotalSales)
		assert.Empty(t, dashboard.TopSellingProduct)
	})

	t.Run("Should map an oversell to unprocessable entity", func(t *testing.T) {
		stockSvc := &stubStockSvc{
			sellFn: func(context.Context, uuid.UUID, int) (service.SellResult, error) {
				return service.SellResult{}, apperr.InsufficientStockErr
			},
		}
		r := newTestRouter(t, &stubCatalogSvc{}, stockSvc, &stubAuthSvc{})

		resp := doJSON(t, r, gohttp.MethodPost, "/api/v1/dashboard/sell", SellRequest{
			ProductID: uuid.New(),
			Quantity:  10,
		})

		assert.Equal(t, gohttp.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), apperr.InsufficientStockCode)
	})
}

func TestAuthRoutes(t *testing.T) {
	t.Run("Should return unauthorized with a generic message on bad credentials", func(t *testing.T) {
		authSvc := &stubAuthSvc{
			loginFn: func(context.Context, string, string) error {
				return apperr.InvalidCredentialsErr
			},
		}
		r := newTestRouter(t, &stubCatalogSvc{}, &stubStockSvc{}, authSvc)

		resp := doJSON(t, r, gohttp.MethodPost, "/api/v1/auth/login", CredentialsRequest{
			Email:    "owner@wingscafe.test",
			Password: "hunter22",
		})

		assert.Equal(t, gohttp.StatusUnauthorized, resp.Code)
		assert.Contains(t, resp.Body.String(), "invalid email or password")
	})

	t.Run("Should report the session state", func(t *testing.T) {
		r := newTestRouter(t, &stubCatalogSvc{}, &stubStockSvc{}, &stubAuthSvc{})

		resp := doJSON(t, r, gohttp.MethodGet, "/api/v1/auth/session", nil)

		assert.Equal(t, gohttp.StatusOK, resp.Code)

		var sess SessionResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &sess))
		assert.Equal(t, "anonymous", sess.State)
	})
}
