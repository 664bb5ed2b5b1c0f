package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"booking-backend/controllers"
	"booking-backend/middleware"
)

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter wires the controllers to their routes.
func SetupRouter(
	pc *controllers.PropertyController,
	uc *controllers.UserController,
	bc *controllers.BookingController,
	origins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Use(cors.New(corsConfig(origins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	properties := r.Group("/properties")
	{
		properties.POST("", pc.CreateProperty)
		properties.GET("/:id", pc.GetProperty)
		properties.GET("/:id/bookings", pc.GetPropertyBookings)
	}

	users := r.Group("/users")
	{
		users.POST("", uc.CreateUser)
		users.GET("/:id", uc.GetUser)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", bc.CreateBooking)
		bookings.GET("/:id", bc.GetBooking)
		bookings.POST("/:id/confirm", bc.ConfirmBooking)
		bookings.POST("/:id/cancel", bc.CancelBooking)
	}

	return r
}
