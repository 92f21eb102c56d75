package handler

import (
	"net/http"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Auth     *services.AuthService
	Catalog  *services.CatalogService
	Bookings *services.BookingService
	Log      logrus.FieldLogger

	// AuthLimiter throttles register and login. Nil disables throttling.
	AuthLimiter    *RateLimiter
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	fieldNamesOnce.Do(useJSONFieldNames)

	r := gin.New()
	r.Use(gin.Recovery(), Logger(log), Timeout(cfg.RequestTimeout))

	authH := NewAuthHandler(cfg.Auth, log)
	venueH := NewVenueHandler(cfg.Catalog, cfg.Bookings, log)
	bookingH := NewBookingHandler(cfg.Bookings, log)

	requireAuth := RequireAuth(cfg.Auth, log)
	ownerOnly := RequireCapability(domain.CapManageVenues, log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC()})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		throttled := auth.Group("")
		if cfg.AuthLimiter != nil {
			throttled.Use(cfg.AuthLimiter.Middleware())
		}
		throttled.POST("/register", authH.Register)
		throttled.POST("/login", authH.Login)

		auth.GET("/me", requireAuth, authH.Me)
		auth.PUT("/profile", requireAuth, authH.UpdateProfile)
		auth.POST("/logout", requireAuth, authH.Logout)
	}

	venues := api.Group("/venues")
	{
		venues.GET("", venueH.List)
		venues.GET("/:id", venueH.Get)
		venues.GET("/:id/availability", venueH.Availability)

		venues.POST("", requireAuth, ownerOnly, venueH.Create)
		venues.PUT("/:id", requireAuth, ownerOnly, venueH.Update)
		venues.DELETE("/:id", requireAuth, ownerOnly, venueH.Delete)
		venues.GET("/:id/bookings", requireAuth, RequireCapability(domain.CapViewVenueBookings, log), venueH.Bookings)
	}

	api.GET("/owner/venues", requireAuth, ownerOnly, venueH.ListOwned)

	bookings := api.Group("/bookings", requireAuth)
	{
		bookings.POST("", bookingH.Create)
		bookings.GET("/my-bookings", bookingH.ListMine)
		bookings.PUT("/:id/cancel", bookingH.Cancel)
	}

	return r
}
