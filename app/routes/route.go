package routes

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/luxystore/luxy-api/app/configs"
	"github.com/luxystore/luxy-api/app/handlers"
	"github.com/luxystore/luxy-api/app/handlers/admin"
	"github.com/luxystore/luxy-api/app/middlewares"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/luxystore/luxy-api/app/services"
	"github.com/luxystore/luxy-api/app/utils/cache"
	"github.com/luxystore/luxy-api/app/utils/renderer"
	"github.com/luxystore/luxy-api/app/utils/sessions"
)

func NewRouter(db *gorm.DB) *mux.Router {
	env := configs.LoadENV

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("❌ Failed to load session keys: %v", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	var productCache *cache.ProductCache
	if env.RedisAddr != "" {
		productCache, err = cache.NewProductCache(env.RedisAddr)
		if err != nil {
			log.Printf("❌ Redis unavailable, catalog cache disabled: %v", err)
			productCache = nil
		} else {
			log.Println("✅ Redis catalog cache connected.")
		}
	}

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	catalogService := services.NewCatalogService(productRepo, productCache)
	cartService := services.NewCartService(cartRepo, productRepo)
	checkoutService := services.NewCheckoutService(env.WhatsAppPhone)

	uploadDir := env.UploadDir
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	uploadService := services.NewUploadService(uploadDir, env.AppURL)

	var mailer *services.Mailer
	if env.SMTPHost != "" && env.ContactNotify != "" {
		mailer = services.NewMailer(services.MailerConfig{
			Host:     env.SMTPHost,
			Port:     env.SMTPPort,
			Username: env.SMTPUsername,
			Password: env.SMTPPassword,
			From:     env.SMTPFrom,
			NotifyTo: env.ContactNotify,
		})
		log.Println("✅ Contact notification mailer configured.")
	}

	render := renderer.New()
	validate := validator.New()
	feed := handlers.NewCatalogFeed()

	productHandler := handlers.NewProductHandler(catalogService, categoryRepo, render)
	cartHandler := handlers.NewCartHandler(cartService, render)
	checkoutHandler := handlers.NewCheckoutHandler(cartService, checkoutService, render)
	contactHandler := handlers.NewContactHandler(messageRepo, render, validate, mailer)
	authHandler := handlers.NewAuthHandler(userRepo, sessionStore, render, validate)

	productAdmin := admin.NewProductAdminHandler(productRepo, render, validate, productCache, feed)
	categoryAdmin := admin.NewCategoryAdminHandler(categoryRepo, productRepo, render)
	messageAdmin := admin.NewMessageAdminHandler(messageRepo, render)
	userAdmin := admin.NewUserAdminHandler(userRepo, adminRepo, render, validate)
	dashboard := admin.NewDashboardHandler(productRepo, messageRepo, adminRepo, render)
	uploadHandler := admin.NewUploadHandler(uploadService, render)

	router := mux.NewRouter()
	router.Use(middlewares.SessionUserMiddleware(sessionStore))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/products", productHandler.Products).Methods("GET")
	api.HandleFunc("/products/featured", productHandler.FeaturedProducts).Methods("GET")
	api.HandleFunc("/products/new", productHandler.NewProducts).Methods("GET")
	api.HandleFunc("/products/on-sale", productHandler.OnSaleProducts).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.ProductDetail).Methods("GET")
	api.HandleFunc("/categories", productHandler.Categories).Methods("GET")
	api.HandleFunc("/categories/{slug}/products", productHandler.ProductsByCategory).Methods("GET")

	api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/cart/count", cartHandler.ItemCount).Methods("GET")
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/items/{productId}", cartHandler.UpdateItem).Methods("PUT")
	api.HandleFunc("/cart/items/{productId}", cartHandler.RemoveItem).Methods("DELETE")
	api.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")

	api.HandleFunc("/checkout/whatsapp", checkoutHandler.WhatsAppCheckout).Methods("POST")
	api.HandleFunc("/contact", contactHandler.Submit).Methods("POST")

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/session", authHandler.Session).Methods("GET")

	router.HandleFunc("/ws/catalog", feed.ServeWS)

	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(sessionStore, adminRepo))

	csrfMiddleware := csrf.Protect(keys.AuthKey,
		csrf.Secure(env.AppEnv == "production"),
		csrf.Path("/admin"),
	)
	adminRouter.Use(csrfMiddleware)

	adminRouter.HandleFunc("/dashboard", dashboard.Dashboard).Methods("GET")

	adminRouter.HandleFunc("/products", productAdmin.ListProducts).Methods("GET")
	adminRouter.HandleFunc("/products", productAdmin.CreateProduct).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", productAdmin.UpdateProduct).Methods("PUT")
	adminRouter.HandleFunc("/products/{id}", productAdmin.DeleteProduct).Methods("DELETE")

	adminRouter.HandleFunc("/categories", categoryAdmin.ListCategories).Methods("GET")
	adminRouter.HandleFunc("/categories/fix", categoryAdmin.FixCategories).Methods("POST")

	adminRouter.HandleFunc("/messages", messageAdmin.ListMessages).Methods("GET")
	adminRouter.HandleFunc("/messages/{id}/read", messageAdmin.MarkAsRead).Methods("PUT")
	adminRouter.HandleFunc("/messages/{id}", messageAdmin.DeleteMessage).Methods("DELETE")

	adminRouter.HandleFunc("/users", userAdmin.ListAdmins).Methods("GET")
	adminRouter.HandleFunc("/users", userAdmin.CreateAdmin).Methods("POST")
	adminRouter.HandleFunc("/users/{id}", userAdmin.RevokeAdmin).Methods("DELETE")

	adminRouter.HandleFunc("/uploads", uploadHandler.UploadImages).Methods("POST")

	return router
}
