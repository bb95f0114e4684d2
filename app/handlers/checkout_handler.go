package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"

	"github.com/sakhi-sarees/storefront/app/helpers"
	"github.com/sakhi-sarees/storefront/app/services"
	"github.com/sakhi-sarees/storefront/app/utils/sessions"
)

type CheckoutHandler struct {
	checkoutSvc  *services.CheckoutService
	sessionStore *sessions.SessionStore
	render       *render.Render
}

func NewCheckoutHandler(
	checkoutSvc *services.CheckoutService,
	sessionStore *sessions.SessionStore,
	r *render.Render,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutSvc:  checkoutSvc,
		sessionStore: sessionStore,
		render:       r,
	}
}

func (h *CheckoutHandler) CreateOrderPost(w http.ResponseWriter, r *http.Request) {
	var reqBody struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := helpers.DecodeJSONBody(r, &reqBody); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	gatewayOrder, err := h.checkoutSvc.BeginCheckout(r.Context(), reqBody.Amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": "Amount must be greater than zero.",
			})
			return
		}
		log.Printf("CreateOrderPost: failed to begin checkout: %v", err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := h.sessionStore.StashPendingOrder(w, r, sessions.PendingOrder{
		GatewayOrderID: gatewayOrder.OrderID,
		Amount:         gatewayOrder.Amount.StringFixed(2),
		Currency:       gatewayOrder.Currency,
	}); err != nil {
		log.Printf("CreateOrderPost: failed to stash pending order %s: %v", gatewayOrder.OrderID, err)
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"order_id": gatewayOrder.OrderID,
		"amount":   gatewayOrder.Amount,
		"currency": gatewayOrder.Currency,
	})
}

type verifyPaymentRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" validate:"required"`
	Signature        string `json:"signature" validate:"required"`

	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required"`

	AddressLine string `json:"address_line" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	Pincode     string `json:"pincode" validate:"required"`

	ProductSlug string          `json:"product_slug" validate:"required"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
	Amount      decimal.Decimal `json:"amount"`
}

func (h *CheckoutHandler) VerifyPaymentPost(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())

	var reqBody verifyPaymentRequest
	if err := helpers.DecodeJSONBody(r, &reqBody); err != nil {
		h.failVerify(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helpers.Validate.Struct(reqBody); err != nil {
		h.failVerify(w, http.StatusBadRequest, helpers.ValidationMessage(err))
		return
	}

	order, err := h.checkoutSvc.VerifyAndRecord(r.Context(), services.VerifyRequest{
		GatewayOrderID:   reqBody.GatewayOrderID,
		GatewayPaymentID: reqBody.GatewayPaymentID,
		Signature:        reqBody.Signature,
		SessionKey:       sessionKey,
		CustomerName:     reqBody.CustomerName,
		CustomerEmail:    reqBody.CustomerEmail,
		CustomerPhone:    reqBody.CustomerPhone,
		AddressLine:      reqBody.AddressLine,
		City:             reqBody.City,
		State:            reqBody.State,
		Pincode:          reqBody.Pincode,
		ProductSlug:      reqBody.ProductSlug,
		Quantity:         reqBody.Quantity,
		Amount:           reqBody.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentVerificationFailed):
			h.failVerify(w, http.StatusBadRequest, "Payment verification failed.")
		case errors.Is(err, services.ErrProductNotFound):
			h.failVerify(w, http.StatusBadRequest, "Product not found.")
		case errors.Is(err, services.ErrAmountMismatch):
			h.failVerify(w, http.StatusBadRequest, "Amount does not match the order total.")
		case errors.Is(err, services.ErrInsufficientStock):
			h.failVerify(w, http.StatusBadRequest, "Product is out of stock.")
		case errors.Is(err, services.ErrDuplicateOrder):
			h.failVerify(w, http.StatusBadRequest, "Payment was already recorded for this order.")
		default:
			log.Printf("VerifyPaymentPost: failed to record order %s: %v", reqBody.GatewayOrderID, err)
			h.failVerify(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	if err := h.sessionStore.ClearPendingOrder(w, r); err != nil {
		log.Printf("VerifyPaymentPost: failed to clear pending order stash: %v", err)
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"order_id": order.OrderID,
	})
}

func (h *CheckoutHandler) failVerify(w http.ResponseWriter, status int, message string) {
	h.render.JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
