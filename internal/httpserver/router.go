package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/JustAsh123/shopalot/internal/media"
	cartsvc "github.com/JustAsh123/shopalot/internal/service/cart"
	categorysvc "github.com/JustAsh123/shopalot/internal/service/category"
	customersvc "github.com/JustAsh123/shopalot/internal/service/customer"
	ordersvc "github.com/JustAsh123/shopalot/internal/service/order"
	productsvc "github.com/JustAsh123/shopalot/internal/service/product"
)

// Deps carries the services the router exposes.
type Deps struct {
	CartLedger  *cartsvc.Ledger
	CategorySvc *categorysvc.Service
	ProductSvc  *productsvc.Service
	OrderSvc    *ordersvc.Service
	CustomerSvc *customersvc.Service
	Uploader    media.Uploader

	JWTSecret      string
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.ProductSvc))
	api.GET("/products/:id", getProductHandler(deps.ProductSvc))
	api.GET("/categories", listCategoriesHandler(deps.CategorySvc))

	authed := api.Group("")
	authed.Use(authRequired(deps.JWTSecret))
	authed.GET("/cart", getCartHandler(deps.CartLedger))
	authed.POST("/cart/items/:productId", addCartItemHandler(deps.CartLedger))
	authed.DELETE("/cart/items/:productId", removeCartItemHandler(deps.CartLedger))
	authed.GET("/orders", listOrdersHandler(deps.OrderSvc))
	authed.POST("/orders", checkoutHandler(deps.OrderSvc))
	authed.GET("/addresses", listAddressesHandler(deps.CustomerSvc))
	authed.POST("/addresses", addAddressHandler(deps.CustomerSvc))
	authed.DELETE("/addresses/:id", removeAddressHandler(deps.CustomerSvc))

	admin := api.Group("/admin")
	admin.Use(authRequired(deps.JWTSecret), adminRequired())
	admin.POST("/categories", upsertCategoryHandler(deps.CategorySvc))
	admin.POST("/products", upsertProductHandler(deps.ProductSvc))
	admin.POST("/uploads", uploadHandler(deps.Uploader))

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}
