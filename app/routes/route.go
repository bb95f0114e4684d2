package routes

import (
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/configs"
	"github.com/sakhi-sarees/storefront/app/handlers"
	"github.com/sakhi-sarees/storefront/app/handlers/admin"
	"github.com/sakhi-sarees/storefront/app/middlewares"
	"github.com/sakhi-sarees/storefront/app/repositories"
	"github.com/sakhi-sarees/storefront/app/services"
	"github.com/sakhi-sarees/storefront/app/utils/renderer"
	"github.com/sakhi-sarees/storefront/app/utils/sessions"
)

func NewRouter(db *gorm.DB, sessionStore *sessions.SessionStore, gateway services.PaymentGateway) *mux.Router {
	render := renderer.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	slideRepo := repositories.NewSlideRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)

	catalogSvc := services.NewCatalogService(productRepo, categoryRepo, slideRepo, testimonialRepo)
	cartSvc := services.NewCartService(cartItemRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(gateway, productRepo, orderRepo)
	orderSvc := services.NewOrderService(orderRepo)

	homeHandler := handlers.NewHomeHandler(catalogSvc, render)
	productHandler := handlers.NewProductHandler(catalogSvc, render)
	cartHandler := handlers.NewCartHandler(cartSvc, render)
	wishlistHandler := handlers.NewWishlistHandler(wishlistRepo, productRepo, render)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, sessionStore, render)
	orderHandler := handlers.NewOrderHandler(orderSvc, render)
	orderAdminHandler := admin.NewOrderAdminHandler(orderRepo, render)

	router := mux.NewRouter()
	router.Use(middlewares.SessionKeyMiddleware(sessionStore))

	router.HandleFunc("/", homeHandler.HomeGet).Methods("GET")
	router.HandleFunc("/products/{slug}", productHandler.ProductDetailGet).Methods("GET")
	router.HandleFunc("/category/{slug}", productHandler.CategoryProductsGet).Methods("GET")
	router.HandleFunc("/search", productHandler.SearchGet).Methods("GET")

	router.HandleFunc("/cart", cartHandler.GetCartGet).Methods("GET")
	router.HandleFunc("/cart/count", cartHandler.CartCountGet).Methods("GET")
	router.HandleFunc("/cart/add/{productID}", cartHandler.AddToCartPost).Methods("POST")
	router.HandleFunc("/cart/update/{productID}", cartHandler.UpdateCartPost).Methods("POST")
	router.HandleFunc("/cart/remove/{productID}", cartHandler.RemoveFromCartPost).Methods("POST")

	router.HandleFunc("/wishlist", wishlistHandler.GetWishlistGet).Methods("GET")
	router.HandleFunc("/wishlist/count", wishlistHandler.WishlistCountGet).Methods("GET")
	router.HandleFunc("/wishlist/add/{productID}", wishlistHandler.AddToWishlistPost).Methods("POST")
	router.HandleFunc("/wishlist/remove/{productID}", wishlistHandler.RemoveFromWishlistPost).Methods("POST")

	router.HandleFunc("/create-order", checkoutHandler.CreateOrderPost).Methods("POST")
	router.HandleFunc("/verify-payment", checkoutHandler.VerifyPaymentPost).Methods("POST")

	router.HandleFunc("/orders", orderHandler.OrderListGet).Methods("GET")
	router.HandleFunc("/orders/{orderID}", orderHandler.OrderDetailGet).Methods("GET")
	router.HandleFunc("/track-order", orderHandler.TrackOrderPost).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(configs.LoadENV.AdminKeyHash))
	adminRouter.HandleFunc("/orders", orderAdminHandler.ListOrdersGet).Methods("GET")
	adminRouter.HandleFunc("/orders/{orderID}/status", orderAdminHandler.UpdateOrderStatusPut).Methods("PUT")

	return router
}
