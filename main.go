package main

import (
	"log"
	"net/http"
	"os"

	"github.com/shopspring/decimal"

	"github.com/sakhi-sarees/storefront/app/cmd"
	"github.com/sakhi-sarees/storefront/app/configs"
	"github.com/sakhi-sarees/storefront/app/routes"
	"github.com/sakhi-sarees/storefront/app/services"
	"github.com/sakhi-sarees/storefront/app/utils/calc"
	"github.com/sakhi-sarees/storefront/app/utils/sessions"
)

func main() {

	env := configs.LoadENV
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	configureShippingFromEnv(env)

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Session keys failed to load: %v. Run `storefront generate-keys` first.", err)
	}
	sessionStore := sessions.NewSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	gateway := services.NewRazorpayGateway(configs.NewRazorpayClient(), env.RazorpayKeySecret)
	log.Println("✅ Razorpay client initialized.")

	router := routes.NewRouter(db, sessionStore, gateway)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}

func configureShippingFromEnv(env configs.ENV) {
	threshold := decimal.Zero
	flatFee := decimal.NewFromInt(-1)

	if env.FreeShippingThreshold != "" {
		parsed, err := decimal.NewFromString(env.FreeShippingThreshold)
		if err != nil {
			log.Printf("Warning: invalid FREE_SHIPPING_THRESHOLD %q, keeping default", env.FreeShippingThreshold)
		} else {
			threshold = parsed
		}
	}
	if env.ShippingFlatFee != "" {
		parsed, err := decimal.NewFromString(env.ShippingFlatFee)
		if err != nil {
			log.Printf("Warning: invalid SHIPPING_FLAT_FEE %q, keeping default", env.ShippingFlatFee)
		} else {
			flatFee = parsed
		}
	}

	calc.ConfigureShipping(threshold, flatFee)
}
