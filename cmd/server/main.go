package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rahulsingh558/the-piquant-pan/internal/config"
	"github.com/rahulsingh558/the-piquant-pan/internal/handlers"
	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/middleware"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
	"github.com/rahulsingh558/the-piquant-pan/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Initialize the key-value store. Without Redis the service still runs,
	// it just loses its data when the process exits.
	var store kv.Store
	redisStore, err := kv.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory storage")
		store = kv.NewMemoryStore()
	} else {
		defer redisStore.Close()
		store = redisStore
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(store)
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	wishlistRepo := repository.NewWishlistRepository(store)

	// Initialize services
	menuService := services.NewMenuService(menuRepo)
	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(cartService, orderRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)
	dashboardService := services.NewDashboardService(orderRepo)
	authService := services.NewAuthService(
		store,
		cfg.AdminUsername,
		cfg.AdminPassword,
		time.Duration(cfg.SessionTimeout)*time.Second,
	)

	cartService.Subscribe(func(count int) {
		log.Info().Int("count", count).Msg("cart updated")
	})

	// Initialize handlers
	storefront := handlers.NewStorefrontHandler(menuService, cartService, checkoutService, wishlistService)
	admin := handlers.NewAdminHandler(authService, menuRepo, dashboardService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/menu", storefront.GetMenu)
		api.GET("/menu/:id/addons", storefront.GetFoodAddons)

		api.GET("/cart", storefront.GetCart)
		api.POST("/cart/items", storefront.AddCartItem)
		api.DELETE("/cart", storefront.ClearCart)

		api.POST("/checkout", storefront.Checkout)
		api.GET("/orders", storefront.GetOrders)

		api.GET("/wishlist", storefront.GetWishlist)
		api.POST("/wishlist/toggle", storefront.ToggleWishlist)
	}

	adminAPI := router.Group("/api/admin")
	adminAPI.POST("/login", admin.Login)
	adminAPI.Use(middleware.AdminAuth(authService))
	{
		adminAPI.POST("/logout", admin.Logout)

		adminAPI.GET("/menu", admin.ListMenuItems)
		adminAPI.POST("/menu", admin.CreateMenuItem)
		adminAPI.GET("/menu/:id", admin.GetMenuItem)
		adminAPI.PUT("/menu/:id", admin.UpdateMenuItem)
		adminAPI.DELETE("/menu/:id", admin.DeleteMenuItem)
		adminAPI.POST("/menu/seed", admin.SeedMenu)
		adminAPI.DELETE("/menu", admin.ClearMenu)

		adminAPI.GET("/dashboard", admin.Dashboard)
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
