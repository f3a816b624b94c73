package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/techstore3d/techstore-backend/api/responses"
	"github.com/techstore3d/techstore-backend/api/validators"
	"github.com/techstore3d/techstore-backend/internal/catalog"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
	"github.com/techstore3d/techstore-backend/pkg/logger"
)

// ProductList returns catalog products matching the optional category,
// product_type and featured query filters.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		featured, err := validators.ParseQueryBool(r, "featured")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, 1000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListProducts(r.Context(), catalog.ListProductsInput{
			Category:    validators.ParseQueryString(r, "category"),
			ProductType: validators.ParseQueryString(r, "product_type"),
			Featured:    featured,
			Limit:       limit,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

func ProductGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,min=0"`
	Category    string   `json:"category" validate:"required"`
	ProductType string   `json:"product_type" validate:"required"`
	Colors      []string `json:"colors,omitempty"`
	ModelURL    *string  `json:"model_url,omitempty"`
	Images      []string `json:"images,omitempty"`
	Stock       int      `json:"stock,omitempty" validate:"omitempty,min=0"`
	Featured    bool     `json:"featured,omitempty"`
}

func ProductCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), catalog.CreateProductInput{
			Name:        strings.TrimSpace(payload.Name),
			Description: payload.Description,
			Price:       *payload.Price,
			Category:    payload.Category,
			ProductType: payload.ProductType,
			Colors:      payload.Colors,
			ModelURL:    payload.ModelURL,
			Images:      payload.Images,
			Stock:       payload.Stock,
			Featured:    payload.Featured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type updateProductRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,min=0"`
	Category    *string   `json:"category,omitempty"`
	ProductType *string   `json:"product_type,omitempty"`
	Colors      *[]string `json:"colors,omitempty"`
	ModelURL    *string   `json:"model_url,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Stock       *int      `json:"stock,omitempty" validate:"omitempty,min=0"`
	Featured    *bool     `json:"featured,omitempty"`
}

// ProductUpdate applies a partial update; absent fields keep their stored
// values.
func ProductUpdate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), chi.URLParam(r, "productId"), catalog.UpdateProductInput{
			Name:        payload.Name,
			Description: payload.Description,
			Price:       payload.Price,
			Category:    payload.Category,
			ProductType: payload.ProductType,
			Colors:      payload.Colors,
			ModelURL:    payload.ModelURL,
			Images:      payload.Images,
			Stock:       payload.Stock,
			Featured:    payload.Featured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func ProductDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		if err := svc.DeleteProduct(r.Context(), chi.URLParam(r, "productId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Product deleted successfully"})
	}
}

// InitSampleData loads the demo catalog; repeated calls are safe.
func InitSampleData(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		count, err := svc.SeedSampleData(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if count == 0 {
			responses.WriteSuccess(w, map[string]any{"message": "Sample data already exists"})
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"message": "Sample data initialized",
			"count":   count,
		})
	}
}
