package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/helpers"
	"github.com/sakhi-sarees/storefront/app/models"
	"github.com/sakhi-sarees/storefront/app/repositories"
)

type OrderAdminHandler struct {
	orderRepo repositories.OrderRepositoryImpl
	render    *render.Render
}

func NewOrderAdminHandler(orderRepo repositories.OrderRepositoryImpl, r *render.Render) *OrderAdminHandler {
	return &OrderAdminHandler{orderRepo: orderRepo, render: r}
}

func (h *OrderAdminHandler) ListOrdersGet(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ListOrdersGet: failed to load orders: %v", err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
		"count":   len(orders),
	})
}

func (h *OrderAdminHandler) UpdateOrderStatusPut(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderID"]

	var reqBody struct {
		Status string `json:"status" validate:"required"`
	}
	if err := helpers.DecodeJSONBody(r, &reqBody); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if !models.ValidOrderStatus(reqBody.Status) {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Unknown order status.",
		})
		return
	}

	order, err := h.orderRepo.UpdateStatus(r.Context(), orderID, reqBody.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"error":   "Order not found.",
			})
		case errors.Is(err, models.ErrInvalidTransition):
			h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "That status change is not allowed.",
			})
		default:
			log.Printf("UpdateOrderStatusPut: failed to update order %s: %v", orderID, err)
			h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   err.Error(),
			})
		}
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"order_id": order.OrderID,
		"status":   order.Status,
	})
}
