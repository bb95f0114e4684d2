package configs

import (
	"log"

	razorpay "github.com/razorpay/razorpay-go"
)

// NewRazorpayClient builds the gateway client once at startup; callers pass
// it down rather than reaching for a package-level singleton.
func NewRazorpayClient() *razorpay.Client {
	if LoadENV.RazorpayKeyID == "" || LoadENV.RazorpayKeySecret == "" {
		log.Println("Warning: Razorpay keys are not configured; checkout will fail until they are set.")
	}
	return razorpay.NewClient(LoadENV.RazorpayKeyID, LoadENV.RazorpayKeySecret)
}
