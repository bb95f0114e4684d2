package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
)

// GatewayOrder is the provider-side record created before payment collection.
type GatewayOrder struct {
	OrderID  string
	Amount   decimal.Decimal
	Currency string
}

// PaymentGateway is injected into the checkout service so handlers and tests
// never touch a process-wide client.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, receipt string) (*GatewayOrder, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}

type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

func NewRazorpayGateway(client *razorpay.Client, secret string) *RazorpayGateway {
	return &RazorpayGateway{client: client, secret: secret}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, receipt string) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amount.Mul(decimal.NewFromInt(100)).IntPart(), // paise
		"currency": "INR",
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("gateway order response carries no order id")
	}

	currency, _ := body["currency"].(string)
	if currency == "" {
		currency = "INR"
	}

	return &GatewayOrder{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
	}, nil
}

// VerifySignature recomputes HMAC-SHA256("order_id|payment_id") with the key
// secret and compares it against the callback's signature in constant time.
func (g *RazorpayGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
