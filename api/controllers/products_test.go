package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/techstore3d/techstore-backend/internal/catalog"
	"github.com/techstore3d/techstore-backend/pkg/db/models"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
	"github.com/techstore3d/techstore-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

type stubCatalogService struct {
	listFn   func(ctx context.Context, input catalog.ListProductsInput) ([]models.Product, error)
	getFn    func(ctx context.Context, id string) (*models.Product, error)
	createFn func(ctx context.Context, input catalog.CreateProductInput) (*models.Product, error)
	updateFn func(ctx context.Context, id string, input catalog.UpdateProductInput) (*models.Product, error)
	deleteFn func(ctx context.Context, id string) error
	seedFn   func(ctx context.Context) (int, error)
}

func (s *stubCatalogService) ListProducts(ctx context.Context, input catalog.ListProductsInput) ([]models.Product, error) {
	if s.listFn != nil {
		return s.listFn(ctx, input)
	}
	return []models.Product{}, nil
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*models.Product, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return &models.Product{ID: "p1", Name: input.Name}, nil
}

func (s *stubCatalogService) UpdateProduct(ctx context.Context, id string, input catalog.UpdateProductInput) (*models.Product, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, input)
	}
	return &models.Product{ID: id}, nil
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubCatalogService) SeedSampleData(ctx context.Context) (int, error) {
	if s.seedFn != nil {
		return s.seedFn(ctx)
	}
	return 0, nil
}

func TestProductList(t *testing.T) {
	logg := testLogger()

	t.Run("passes filters through", func(t *testing.T) {
		var gotInput catalog.ListProductsInput
		stub := &stubCatalogService{
			listFn: func(ctx context.Context, input catalog.ListProductsInput) ([]models.Product, error) {
				gotInput = input
				return []models.Product{{ID: "p1"}}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/products?category=Laptop&product_type=laptop&featured=true&limit=5", nil)
		rec := httptest.NewRecorder()
		ProductList(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotInput.Category != "Laptop" || gotInput.ProductType != "laptop" || gotInput.Limit != 5 {
			t.Fatalf("unexpected input %+v", gotInput)
		}
		if gotInput.Featured == nil || !*gotInput.Featured {
			t.Fatal("expected featured filter to pass through")
		}
	})

	t.Run("rejects non-boolean featured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products?featured=maybe", nil)
		rec := httptest.NewRecorder()
		ProductList(&stubCatalogService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestProductGetNotFound(t *testing.T) {
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/missing", nil), "productId", "missing")
	rec := httptest.NewRecorder()
	ProductGet(&stubCatalogService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	if envelope.Error.Message != "Product not found" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestProductCreate(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		var gotInput catalog.CreateProductInput
		stub := &stubCatalogService{
			createFn: func(ctx context.Context, input catalog.CreateProductInput) (*models.Product, error) {
				gotInput = input
				return &models.Product{ID: "p1", Name: input.Name}, nil
			},
		}

		body := `{"name":"Test Laptop","description":"A laptop","price":1999.99,"category":"Laptop","product_type":"laptop"}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ProductCreate(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotInput.Name != "Test Laptop" || gotInput.Price != 1999.99 {
			t.Fatalf("unexpected input %+v", gotInput)
		}
	})

	t.Run("accepts zero price", func(t *testing.T) {
		var gotInput catalog.CreateProductInput
		stub := &stubCatalogService{
			createFn: func(ctx context.Context, input catalog.CreateProductInput) (*models.Product, error) {
				gotInput = input
				return &models.Product{ID: "p1", Name: input.Name}, nil
			},
		}

		body := `{"name":"Freebie","description":"promo item","price":0,"category":"Accessory","product_type":"other"}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ProductCreate(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for explicit zero price, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotInput.Price != 0 {
			t.Fatalf("expected price 0, got %v", gotInput.Price)
		}
	})

	t.Run("missing price", func(t *testing.T) {
		body := `{"name":"Test","description":"d","category":"c","product_type":"t"}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ProductCreate(&stubCatalogService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"Only Name"}`))
		rec := httptest.NewRecorder()
		ProductCreate(&stubCatalogService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		body := `{"name":"Test","description":"d","price":1,"category":"c","product_type":"t","bogus":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ProductCreate(&stubCatalogService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestProductUpdatePartialPayload(t *testing.T) {
	var gotInput catalog.UpdateProductInput
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, input catalog.UpdateProductInput) (*models.Product, error) {
			gotInput = input
			return &models.Product{ID: id}, nil
		},
	}

	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/products/p1", strings.NewReader(`{"price":250}`)),
		"productId", "p1",
	)
	rec := httptest.NewRecorder()
	ProductUpdate(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotInput.Price == nil || *gotInput.Price != 250 {
		t.Fatalf("expected price update, got %+v", gotInput)
	}
	if gotInput.Featured != nil || gotInput.Name != nil {
		t.Fatal("absent fields must stay nil")
	}
}

func TestProductDeleteNotFound(t *testing.T) {
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, id string) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/products/missing", nil), "productId", "missing")
	rec := httptest.NewRecorder()
	ProductDelete(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestInitSampleData(t *testing.T) {
	logg := testLogger()

	t.Run("seeds empty catalog", func(t *testing.T) {
		stub := &stubCatalogService{
			seedFn: func(ctx context.Context) (int, error) {
				return 4, nil
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/init-sample-data", nil)
		rec := httptest.NewRecorder()
		InitSampleData(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Sample data initialized") {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("reports already seeded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/init-sample-data", nil)
		rec := httptest.NewRecorder()
		InitSampleData(&stubCatalogService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "already exists") {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	})
}
