package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thepromise/ordering-platform/config"
	"github.com/thepromise/ordering-platform/controllers"
	"github.com/thepromise/ordering-platform/middlewares"
	"github.com/thepromise/ordering-platform/store"
)

func SetupRouter(cfg config.Config, orderStore *store.OrderStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 50 requests per second per IP across the whole API. Must be attached
	// before any route is registered; gin snapshots each route's handler
	// chain at registration time.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middlewares.LoggerMiddleware())

	catalogCtrl := controllers.NewCatalogController()
	orderCtrl := controllers.NewOrderController(orderStore)
	analyticsCtrl := controllers.NewAnalyticsController(orderStore)
	chatCtrl := controllers.NewChatController()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/branches", catalogCtrl.GetAllBranches)
		api.GET("/menu", catalogCtrl.GetAllMenus)

		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		api.GET("/analytics/overview", analyticsCtrl.GetOverview)

		chat := api.Group("/chat")
		chat.Use(middlewares.NewChatRateLimiter())
		chat.POST("", chatCtrl.PostChat)

		// KDS WebSocket for chef/staff/admin live views
		api.GET("/kds/ws", controllers.KDSHandler)
	}

	return r
}
