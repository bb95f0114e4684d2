package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/sakhi-sarees/storefront/app/helpers"
	"github.com/sakhi-sarees/storefront/app/models"
	"github.com/sakhi-sarees/storefront/app/services"
	"github.com/sakhi-sarees/storefront/app/utils/format"
)

type OrderHandler struct {
	orderSvc *services.OrderService
	render   *render.Render
}

func NewOrderHandler(orderSvc *services.OrderService, r *render.Render) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, render: r}
}

func orderPayload(o *models.Order) map[string]interface{} {
	payload := map[string]interface{}{
		"order_id":      o.OrderID,
		"customer_name": o.CustomerName,
		"product_name":  o.ProductName,
		"quantity":      o.Quantity,
		"product_price": o.ProductPrice,
		"shipping_fee":  o.ShippingFee,
		"total_amount":  o.TotalAmount,
		"display_total": format.INR(o.TotalAmount),
		"status":        o.Status,
		"payment_date":  o.PaymentDate,
		"shipped_at":    o.ShippedAt,
		"delivered_at":  o.DeliveredAt,
		"created_at":    o.CreatedAt,
	}
	if o.Product != nil {
		payload["product"] = productPayload(o.Product)
	}
	return payload
}

func (h *OrderHandler) OrderListGet(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	phone := r.URL.Query().Get("phone")

	if email == "" && phone == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Provide an email or a phone number to look up orders.",
		})
		return
	}

	orders, err := h.orderSvc.History(r.Context(), email, phone)
	if err != nil {
		log.Printf("OrderListGet: failed to load order history: %v", err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	payloads := make([]map[string]interface{}, 0, len(orders))
	for i := range orders {
		payloads = append(payloads, orderPayload(&orders[i]))
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  payloads,
		"count":   len(payloads),
	})
}

func (h *OrderHandler) OrderDetailGet(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderID"]

	order, err := h.orderSvc.GetByOrderID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"error":   "Order not found.",
			})
			return
		}
		log.Printf("OrderDetailGet: failed to load order %s: %v", orderID, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   orderPayload(order),
	})
}

func (h *OrderHandler) TrackOrderPost(w http.ResponseWriter, r *http.Request) {
	var reqBody struct {
		OrderID string `json:"order_id" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
	}
	if err := helpers.DecodeJSONBody(r, &reqBody); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if err := helpers.Validate.Struct(reqBody); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   helpers.ValidationMessage(err),
		})
		return
	}

	order, err := h.orderSvc.Track(r.Context(), reqBody.OrderID, reqBody.Email)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"error":   "No order matches that id and email.",
			})
			return
		}
		log.Printf("TrackOrderPost: failed to track order %s: %v", reqBody.OrderID, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   orderPayload(order),
	})
}
