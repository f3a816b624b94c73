package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	cartsvc "github.com/techstore3d/techstore-backend/internal/cart"
	"github.com/techstore3d/techstore-backend/pkg/db/models"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
)

type stubCartService struct {
	getFn    func(ctx context.Context, sessionID string) (*models.Cart, error)
	addFn    func(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*models.Cart, error)
	removeFn func(ctx context.Context, sessionID, itemID string) error
	clearFn  func(ctx context.Context, sessionID string) error
}

func (s *stubCartService) GetOrCreateCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	if s.getFn != nil {
		return s.getFn(ctx, sessionID)
	}
	return &models.Cart{ID: "c1", SessionID: sessionID, Items: []models.CartItem{}}, nil
}

func (s *stubCartService) AddItem(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*models.Cart, error) {
	if s.addFn != nil {
		return s.addFn(ctx, sessionID, input)
	}
	return &models.Cart{ID: "c1", SessionID: sessionID}, nil
}

func (s *stubCartService) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	if s.removeFn != nil {
		return s.removeFn(ctx, sessionID, itemID)
	}
	return nil
}

func (s *stubCartService) ClearCart(ctx context.Context, sessionID string) error {
	if s.clearFn != nil {
		return s.clearFn(ctx, sessionID)
	}
	return nil
}

func removeItemRequest(t *testing.T, sessionID, itemID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/"+sessionID+"/items/"+itemID, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("sessionId", sessionID)
	routeCtx.URLParams.Add("itemId", itemID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCartFetch(t *testing.T) {
	var gotSession string
	stub := &stubCartService{
		getFn: func(ctx context.Context, sessionID string) (*models.Cart, error) {
			gotSession = sessionID
			return &models.Cart{ID: "c1", SessionID: sessionID, Items: []models.CartItem{}}, nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/cart/sess-1", nil), "sessionId", "sess-1")
	rec := httptest.NewRecorder()
	CartFetch(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSession != "sess-1" {
		t.Fatalf("unexpected session %q", gotSession)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", rec.Body.String())
	}
}

func TestCartAddItem(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		var gotInput cartsvc.AddItemInput
		stub := &stubCartService{
			addFn: func(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*models.Cart, error) {
				gotInput = input
				return &models.Cart{ID: "c1", SessionID: sessionID}, nil
			},
		}

		body := `{"product_id":"p1","quantity":2,"selected_color":"#222222"}`
		req := withURLParam(
			httptest.NewRequest(http.MethodPost, "/api/cart/sess-1/items", strings.NewReader(body)),
			"sessionId", "sess-1",
		)
		rec := httptest.NewRecorder()
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotInput.ProductID != "p1" || gotInput.Quantity != 2 || gotInput.SelectedColor != "#222222" {
			t.Fatalf("unexpected input %+v", gotInput)
		}

		var envelope struct {
			Data struct {
				Message string       `json:"message"`
				Cart    *models.Cart `json:"cart"`
			} `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("invalid success envelope: %v", err)
		}
		if envelope.Data.Message != "Item added to cart successfully" {
			t.Fatalf("unexpected message %q", envelope.Data.Message)
		}
		if envelope.Data.Cart == nil || envelope.Data.Cart.ID != "c1" {
			t.Fatalf("expected cart alongside confirmation, got %+v", envelope.Data.Cart)
		}
	})

	t.Run("defaults omitted quantity to one", func(t *testing.T) {
		var gotInput cartsvc.AddItemInput
		stub := &stubCartService{
			addFn: func(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*models.Cart, error) {
				gotInput = input
				return &models.Cart{ID: "c1", SessionID: sessionID}, nil
			},
		}

		body := `{"product_id":"p1","selected_color":"#222222"}`
		req := withURLParam(
			httptest.NewRequest(http.MethodPost, "/api/cart/sess-1/items", strings.NewReader(body)),
			"sessionId", "sess-1",
		)
		rec := httptest.NewRecorder()
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 when quantity omitted, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotInput.Quantity != 1 {
			t.Fatalf("expected default quantity 1, got %d", gotInput.Quantity)
		}
	})

	t.Run("missing selected color", func(t *testing.T) {
		req := withURLParam(
			httptest.NewRequest(http.MethodPost, "/api/cart/sess-1/items", strings.NewReader(`{"product_id":"p1","quantity":1}`)),
			"sessionId", "sess-1",
		)
		rec := httptest.NewRecorder()
		CartAddItem(&stubCartService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("explicit zero quantity is not defaulted", func(t *testing.T) {
		var gotInput cartsvc.AddItemInput
		stub := &stubCartService{
			addFn: func(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*models.Cart, error) {
				gotInput = input
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
			},
		}

		body := `{"product_id":"p1","quantity":0,"selected_color":"#222222"}`
		req := withURLParam(
			httptest.NewRequest(http.MethodPost, "/api/cart/sess-1/items", strings.NewReader(body)),
			"sessionId", "sess-1",
		)
		rec := httptest.NewRecorder()
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if gotInput.Quantity != 0 {
			t.Fatalf("explicit zero must reach the service unchanged, got %d", gotInput.Quantity)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		req := withURLParam(
			httptest.NewRequest(http.MethodPost, "/api/cart/sess-1/items", strings.NewReader(`{"quantity":2}`)),
			"sessionId", "sess-1",
		)
		rec := httptest.NewRecorder()
		CartAddItem(&stubCartService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		stub := &stubCartService{
			addFn: func(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*models.Cart, error) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
			},
		}

		body := `{"product_id":"missing","quantity":1,"selected_color":"#222222"}`
		req := withURLParam(
			httptest.NewRequest(http.MethodPost, "/api/cart/sess-1/items", strings.NewReader(body)),
			"sessionId", "sess-1",
		)
		rec := httptest.NewRecorder()
		CartAddItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCartRemoveItem(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		var gotItem string
		stub := &stubCartService{
			removeFn: func(ctx context.Context, sessionID, itemID string) error {
				gotItem = itemID
				return nil
			},
		}

		req := removeItemRequest(t, "sess-1", "item-1")
		rec := httptest.NewRecorder()
		CartRemoveItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotItem != "item-1" {
			t.Fatalf("unexpected item %q", gotItem)
		}
	})

	t.Run("missing cart", func(t *testing.T) {
		stub := &stubCartService{
			removeFn: func(ctx context.Context, sessionID, itemID string) error {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Cart not found")
			},
		}

		req := removeItemRequest(t, "sess-1", "item-1")
		rec := httptest.NewRecorder()
		CartRemoveItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCartClear(t *testing.T) {
	cleared := false
	stub := &stubCartService{
		clearFn: func(ctx context.Context, sessionID string) error {
			cleared = true
			return nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/cart/sess-1", nil), "sessionId", "sess-1")
	rec := httptest.NewRecorder()
	CartClear(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !cleared {
		t.Fatal("expected ClearCart to be invoked")
	}
}
