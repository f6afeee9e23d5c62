package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "poolside/internal/config"
	h "poolside/internal/http/handlers"
	"poolside/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Guest-facing booking flow
		reservations := api.Group("/reservations")
		reservations.POST("", h.CreateReservation)
		reservations.GET("", h.ListReservations)
		reservations.GET("/:code", h.GetReservationByCode)
		reservations.GET("/:code/voucher", h.GetReservationVoucher)

		// Staff auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Staff decisions on pending reservations
		admin := api.Group("/admin/reservations",
			middleware.StaffAuth([]byte(env.JWTSecret)),
			middleware.RequireRoles("admin"))
		admin.PUT("/:id/approve", h.ApproveReservation)
		admin.PUT("/:id/reject", h.RejectReservation)
		admin.PUT("/:id/cancel", h.CancelReservation)
	}

	return r
}
