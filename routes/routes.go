package routes

import (
	"net/http"
	"time"

	"ticketly/handlers"
	"ticketly/middleware"
	"ticketly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the signup, login and OTP endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", handlers.Signup)
		api.POST("/login", handlers.Login)
		api.POST("/verify-otp", handlers.VerifyOTP)
		api.POST("/resend-otp", handlers.ResendOTP)
		api.POST("/forgot-password", handlers.ForgotPassword)
		api.POST("/reset-password", handlers.ResetPassword)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/profile", handlers.GetProfile)
	}
}

// RegisterCatalogRoutes registers list/details/create for the six item types.
// Reads are public; creation requires authentication.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/movies", handlers.ListMovies)
		api.GET("/movies/:id", handlers.GetMovie)
		api.GET("/concerts", handlers.ListConcerts)
		api.GET("/concerts/:id", handlers.GetConcert)
		api.GET("/buses", handlers.ListBuses)
		api.GET("/buses/:id", handlers.GetBus)
		api.GET("/trains", handlers.ListTrains)
		api.GET("/trains/:id", handlers.GetTrain)
		api.GET("/flights", handlers.ListFlights)
		api.GET("/flights/:id", handlers.GetFlight)
		api.GET("/cars", handlers.ListCars)
		api.GET("/cars/nearby", handlers.ListNearbyCars)
		api.GET("/cars/:id", handlers.GetCar)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/movies", handlers.CreateMovie)
		protected.POST("/concerts", handlers.CreateConcert)
		protected.POST("/buses", handlers.CreateBus)
		protected.POST("/trains", handlers.CreateTrain)
		protected.POST("/flights", handlers.CreateFlight)
		protected.POST("/cars", handlers.CreateCar)
	}
}

// RegisterBookingRoutes registers the reservation and ledger endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/movie", handlers.BookMovie)
		api.POST("/concert", handlers.BookConcert)
		api.POST("/bus", handlers.BookBus)
		api.POST("/train", handlers.BookTrain)
		api.POST("/flight", handlers.BookFlight)
		api.POST("/car", handlers.BookCar)

		api.GET("", handlers.GetUserBookings)
		api.GET("/:bookingId", handlers.GetBookingDetails)
		api.POST("/:bookingId/cancel", handlers.CancelBooking)
	}
}

// RegisterPaymentRoutes registers the payment lifecycle endpoints.
func RegisterPaymentRoutes(r *gin.Engine) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/intent", handlers.CreatePaymentIntent)
		api.POST("/confirm", handlers.ConfirmPayment)
		api.POST("/:paymentId/refund", handlers.RefundPayment)
		api.GET("/:paymentId", handlers.GetPaymentDetails)
	}
}

// RegisterHealthRoute registers the service banner and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ticketly API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r)
	RegisterCatalogRoutes(r)
	RegisterBookingRoutes(r)
	RegisterPaymentRoutes(r)
	RegisterHealthRoute(r)
}
