package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techstore3d/techstore-backend/api/responses"
	"github.com/techstore3d/techstore-backend/api/validators"
	cartsvc "github.com/techstore3d/techstore-backend/internal/cart"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
	"github.com/techstore3d/techstore-backend/pkg/logger"
)

func cartContext(r *http.Request, logg *logger.Logger) (context.Context, string) {
	sessionID := chi.URLParam(r, "sessionId")
	ctx := r.Context()
	if logg != nil {
		ctx = logg.WithSessionID(ctx, sessionID)
	}
	return ctx, sessionID
}

// CartFetch returns the session's cart, creating an empty one on first sight
// of the session id.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, sessionID := cartContext(r, logg)
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.GetOrCreateCart(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// Quantity stays a pointer so an omitted value can default to a single unit
// without rejecting an explicit payload.
type addCartItemRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	Quantity      *int   `json:"quantity,omitempty" validate:"omitempty,min=1"`
	SelectedColor string `json:"selected_color" validate:"required"`
}

// CartAddItem merges the line into the session's cart and returns the updated
// cart.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, sessionID := cartContext(r, logg)
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		quantity := 1
		if payload.Quantity != nil {
			quantity = *payload.Quantity
		}

		cart, err := svc.AddItem(ctx, sessionID, cartsvc.AddItemInput{
			ProductID:     payload.ProductID,
			Quantity:      quantity,
			SelectedColor: payload.SelectedColor,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"message": "Item added to cart successfully",
			"cart":    cart,
		})
	}
}

func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, sessionID := cartContext(r, logg)
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := svc.RemoveItem(ctx, sessionID, chi.URLParam(r, "itemId")); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Item removed from cart"})
	}
}

func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, sessionID := cartContext(r, logg)
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := svc.ClearCart(ctx, sessionID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Cart cleared"})
	}
}
