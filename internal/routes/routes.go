package routes

import (
	"time"

	"github.com/bostany/storefront/internal/handlers"
	"github.com/bostany/storefront/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Config struct {
	AllowedOrigins []string
	Session        middleware.SessionConfig
}

// corsConfig allows the storefront frontend to send the session header and
// read the one we hand back.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	cfg.AllowOrigins = origins
	return cfg
}

func SetupRouter(h *handlers.Handlers, cfg Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(h.Log), middleware.RequestLogger(h.Log))

	// --- APPLY THE CORS GUARD ---
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", h.Ping)

		// --- Catalog Routes (no session) ---
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/featured", h.FeaturedProducts)
		v1.GET("/products/:slug", h.GetProduct)
		v1.GET("/categories", h.GetAllCategories)
		v1.GET("/categories/:slug/products", h.CategoryProducts)
		v1.GET("/brands", h.GetAllBrands)
		v1.GET("/brands/:slug/products", h.BrandProducts)
		v1.GET("/checkout/governorates", h.GetGovernorates)

		// --- Session Routes ---
		shop := v1.Group("/")
		shop.Use(middleware.SessionMiddleware(h.Sessions, cfg.Session, h.Log))
		{
			shop.GET("/search/suggest", h.SearchSuggest)

			shop.GET("/cart", h.GetCart)
			shop.POST("/cart/items", h.AddToCart)
			shop.PUT("/cart/items/:product_id/:variant_id", h.UpdateCartItem)
			shop.DELETE("/cart/items/:product_id/:variant_id", h.DeleteCartItem)
			shop.DELETE("/cart", h.ClearCart)
			shop.POST("/cart/promo", h.ApplyPromo)
			shop.DELETE("/cart/promo", h.RemovePromo)

			shop.GET("/wishlist", h.GetWishlist)
			shop.POST("/wishlist/items", h.AddToWishlist)
			shop.DELETE("/wishlist/items/:product_id", h.RemoveFromWishlist)
			shop.POST("/wishlist/toggle", h.ToggleWishlist)

			shop.GET("/checkout", h.GetCheckout)
			shop.PUT("/checkout/delivery", h.SubmitDelivery)
			shop.PUT("/checkout/payment", h.SubmitPayment)
			shop.PUT("/checkout/terms", h.SetTerms)
			shop.POST("/checkout/sections/:step/edit", h.EditSection)
			shop.POST("/checkout/place", h.PlaceOrder)
			shop.GET("/checkout/confirmation", h.GetConfirmation)
		}
	}

	return router
}
