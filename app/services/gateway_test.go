package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayGatewayVerifySignature(t *testing.T) {
	const secret = "test_secret_key"
	gateway := NewRazorpayGateway(nil, secret)

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{
			name:      "valid signature",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: signPayload(secret, "order_abc123", "pay_xyz789"),
			want:      true,
		},
		{
			name:      "signature for another payment",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: signPayload(secret, "order_abc123", "pay_other"),
			want:      false,
		},
		{
			name:      "signature with the wrong secret",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: signPayload("wrong_secret", "order_abc123", "pay_xyz789"),
			want:      false,
		},
		{
			name:      "empty signature",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: "",
			want:      false,
		},
		{
			name:      "garbage signature",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: "not-a-hex-digest",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gateway.VerifySignature(tt.orderID, tt.paymentID, tt.signature); got != tt.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tt.want)
			}
		})
	}
}
