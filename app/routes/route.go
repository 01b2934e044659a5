package routes

import (
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/configs"
	"github.com/DevarshLade/lade-studio/app/handlers"
	"github.com/DevarshLade/lade-studio/app/middlewares"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/DevarshLade/lade-studio/app/services"
	"github.com/DevarshLade/lade-studio/app/utils/renderer"
	"github.com/DevarshLade/lade-studio/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) http.Handler {
	render := renderer.New()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	addressRepo := repositories.NewGormAddressRepository(db)
	userRepo := repositories.NewUserRepository(db)
	designRepo := repositories.NewCustomDesignRepository(db)
	notifyRepo := repositories.NewNotifyRepository(db)

	orderSvc := services.NewOrderService(db, validate, productRepo, orderRepo, orderItemRepo)
	reviewSvc := services.NewReviewService(validate, reviewRepo, productRepo)
	wishlistSvc := services.NewWishlistService(db, wishlistRepo, productRepo)
	slugSvc := services.NewSlugService(productRepo)
	webhookSvc := services.NewWebhookService(env.IDENTITY_WEBHOOK_SECRET, userRepo)
	uploaderSvc := services.NewUploaderService(configs.NewCloudinaryClient(), env.CLOUDINARY_FOLDER)

	// Prefer the AES-encrypted session key pair; fall back to the plain
	// signing key when it is not configured.
	var cartStore sessions.CartStore
	if keys, err := configs.LoadSessionKeysFromEnv(); err == nil {
		cartStore = sessions.NewCookieCartStore(keys.AuthKey, keys.EncKey)
	} else {
		log.Printf("Session keys not configured (%v), using SESSION_KEY only", err)
		cartStore = sessions.NewCookieCartStore([]byte(env.SESSION_KEY))
	}

	productHandler := handlers.NewProductHandler(render, productRepo, categoryRepo, reviewRepo)
	orderHandler := handlers.NewOrderHandler(render, orderSvc)
	reviewHandler := handlers.NewReviewHandler(render, reviewSvc)
	wishlistHandler := handlers.NewWishlistHandler(render, wishlistSvc)
	addressHandler := handlers.NewAddressHandler(render, validate, addressRepo)
	designHandler := handlers.NewCustomDesignHandler(render, validate, designRepo, uploaderSvc)
	notifyHandler := handlers.NewNotifyHandler(render, validate, notifyRepo, productRepo)
	cartHandler := handlers.NewCartHandler(render, cartStore, productRepo)
	webhookHandler := handlers.NewWebhookHandler(render, webhookSvc)
	debugHandler := handlers.NewDebugHandler(render, env)
	adminHandler := handlers.NewAdminHandler(render, slugSvc, orderSvc)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLoggerMiddleware)
	router.Use(middlewares.UserContextMiddleware(userRepo))

	// Catalog
	router.HandleFunc("/api/products", productHandler.ListProducts).Methods("GET")
	router.HandleFunc("/api/products/featured", productHandler.ListFeaturedProducts).Methods("GET")
	router.HandleFunc("/api/products/{slug}", productHandler.GetProductBySlug).Methods("GET")
	router.HandleFunc("/api/categories", productHandler.ListCategories).Methods("GET")

	// Reviews
	router.HandleFunc("/api/products/{productID}/reviews", reviewHandler.ListReviews).Methods("GET")
	router.HandleFunc("/api/products/{productID}/reviews", reviewHandler.CreateReview).Methods("POST")

	// Orders
	router.HandleFunc("/api/orders", orderHandler.CreateOrder).Methods("POST")
	router.HandleFunc("/api/orders", orderHandler.ListMyOrders).Methods("GET")
	router.HandleFunc("/api/orders/{orderCode}", orderHandler.GetOrderByCode).Methods("GET")
	router.HandleFunc("/api/orders/{orderCode}/cancel", orderHandler.CancelOrder).Methods("POST")

	// Wishlist
	router.HandleFunc("/api/wishlist", wishlistHandler.List).Methods("GET")
	router.HandleFunc("/api/wishlist/{productID}/toggle", wishlistHandler.Toggle).Methods("POST")

	// Addresses
	router.HandleFunc("/api/addresses", addressHandler.ListAddresses).Methods("GET")
	router.HandleFunc("/api/addresses", addressHandler.CreateAddress).Methods("POST")
	router.HandleFunc("/api/addresses/{addressID}", addressHandler.UpdateAddress).Methods("PUT")
	router.HandleFunc("/api/addresses/{addressID}", addressHandler.DeleteAddress).Methods("DELETE")
	router.HandleFunc("/api/addresses/{addressID}/default", addressHandler.SetDefaultAddress).Methods("POST")

	// Custom designs
	router.HandleFunc("/api/custom-designs", designHandler.CreateRequest).Methods("POST")
	router.HandleFunc("/api/custom-designs", designHandler.ListMyRequests).Methods("GET")

	// Notify-me intake
	router.HandleFunc("/api/notify-requests", notifyHandler.CreateNotifyRequest).Methods("POST")

	// Guest cart (ephemeral cookie session)
	router.HandleFunc("/api/cart", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/api/cart/items", cartHandler.AddItem).Methods("POST")
	router.HandleFunc("/api/cart/items/{productID}", cartHandler.UpdateItem).Methods("PUT")
	router.HandleFunc("/api/cart/items/{productID}", cartHandler.RemoveItem).Methods("DELETE")
	router.HandleFunc("/api/cart", cartHandler.ClearCart).Methods("DELETE")

	// Identity-provider webhooks
	router.HandleFunc("/webhooks/identity", webhookHandler.HandleIdentityWebhook).Methods("POST")
	router.HandleFunc("/webhooks/identity/unverified", webhookHandler.HandleUnverifiedWebhook).Methods("POST")

	// Ops
	router.HandleFunc("/debug/env", debugHandler.EnvStatus).Methods("GET")
	router.HandleFunc("/admin/repair-slugs", adminHandler.RepairSlugs).Methods("GET")
	router.HandleFunc("/admin/orders", adminHandler.ListOrders).Methods("GET")
	router.HandleFunc("/admin/orders/{orderID}/status", adminHandler.UpdateOrderStatus).Methods("PUT")

	if env.CSRF_KEY != "" {
		log.Println("✅ CSRF protection enabled.")
		protect := csrf.Protect([]byte(env.CSRF_KEY), csrf.Secure(env.APP_ENV == "production"))
		return protect(router)
	}
	return router
}
