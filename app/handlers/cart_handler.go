package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/sakhi-sarees/storefront/app/helpers"
	"github.com/sakhi-sarees/storefront/app/services"
	"github.com/sakhi-sarees/storefront/app/utils/format"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, r *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: r}
}

func (h *CartHandler) cartCount(r *http.Request, sessionKey string) int64 {
	count, err := h.cartSvc.ItemCount(r.Context(), sessionKey)
	if err != nil {
		log.Printf("CartHandler: failed to count cart items: %v", err)
		return 0
	}
	return count
}

func (h *CartHandler) fail(w http.ResponseWriter, status int, message string) {
	h.render.JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func (h *CartHandler) GetCartGet(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())

	totals, err := h.cartSvc.Totals(r.Context(), sessionKey)
	if err != nil {
		log.Printf("GetCartGet: failed to compute totals: %v", err)
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]map[string]interface{}, 0, len(totals.Items))
	for i := range totals.Items {
		item := &totals.Items[i]
		line := map[string]interface{}{
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
			"line_total": item.LineTotal(),
		}
		if item.Product != nil {
			line["product"] = productPayload(item.Product)
		}
		items = append(items, line)
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"items":            items,
		"cart_count":       totals.Count,
		"subtotal":         totals.Subtotal,
		"shipping":         totals.Shipping,
		"total":            totals.Total,
		"display_subtotal": format.INR(totals.Subtotal),
		"display_total":    format.INR(totals.Total),
	})
}

func (h *CartHandler) CartCountGet(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"cart_count": h.cartCount(r, sessionKey),
	})
}

func (h *CartHandler) AddToCartPost(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())
	productID := mux.Vars(r)["productID"]

	qty := 1
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(w, http.StatusBadRequest, "quantity is not a number")
			return
		}
		qty = parsed
	}

	item, err := h.cartSvc.AddItem(r.Context(), sessionKey, productID, qty)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			h.fail(w, http.StatusNotFound, "Product not found.")
		case errors.Is(err, services.ErrOutOfStock):
			h.fail(w, http.StatusBadRequest, "Requested quantity exceeds available stock.")
		default:
			log.Printf("AddToCartPost: failed to add product %s: %v", productID, err)
			h.fail(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	message := "Added to cart."
	if item.Product != nil {
		message = fmt.Sprintf("%s added to cart.", item.Product.Name)
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    message,
		"cart_count": h.cartCount(r, sessionKey),
	})
}

func (h *CartHandler) UpdateCartPost(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())
	productID := mux.Vars(r)["productID"]

	var reqBody struct {
		Quantity int `json:"quantity"`
	}
	if err := helpers.DecodeJSONBody(r, &reqBody); err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.cartSvc.UpdateItem(r.Context(), sessionKey, productID, reqBody.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotInCart):
			h.fail(w, http.StatusBadRequest, "Product is not in the cart.")
		case errors.Is(err, services.ErrInsufficientStock):
			h.fail(w, http.StatusBadRequest, "Requested quantity exceeds available stock.")
		case errors.Is(err, services.ErrProductNotFound):
			h.fail(w, http.StatusNotFound, "Product not found.")
		default:
			log.Printf("UpdateCartPost: failed to update product %s: %v", productID, err)
			h.fail(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    "Cart updated.",
		"cart_count": h.cartCount(r, sessionKey),
	})
}

func (h *CartHandler) RemoveFromCartPost(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())
	productID := mux.Vars(r)["productID"]

	if err := h.cartSvc.RemoveItem(r.Context(), sessionKey, productID); err != nil {
		if errors.Is(err, services.ErrNotInCart) {
			h.fail(w, http.StatusBadRequest, "Product is not in the cart.")
			return
		}
		log.Printf("RemoveFromCartPost: failed to remove product %s: %v", productID, err)
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    "Removed from cart.",
		"cart_count": h.cartCount(r, sessionKey),
	})
}
