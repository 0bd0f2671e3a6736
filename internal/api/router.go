package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayease/booking-api/internal/api/handler"
	"github.com/stayease/booking-api/internal/api/middleware"
	"github.com/stayease/booking-api/internal/core/domain"
	"github.com/stayease/booking-api/internal/core/service"
	mongodb "github.com/stayease/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/stayease/booking-api/internal/infrastructure/db/redis"
	"github.com/stayease/booking-api/internal/infrastructure/http/handlers"
	"github.com/stayease/booking-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the audit dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("stayease"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hotelRepo := mongodb.NewHotelRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	dispatcher := queue.NewDispatcher(0, auditRepo, log)

	tokens := service.NewTokenProvider(jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, bookingRepo, tokens, log)
	hotelService := service.NewHotelService(hotelRepo, bookingRepo, dispatcher, log)
	bookingService := service.NewBookingService(
		bookingRepo, hotelRepo, userRepo,
		redisdb.NewHotelLock(rdb), dispatcher, log,
	)

	userHandler := handler.NewUserHandler(userService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authRequired := middleware.Auth(tokens)

	// --- User routes ---
	e.POST("/api/users/register", userHandler.Register)
	e.POST("/api/users/login", userHandler.Login)
	e.GET("/api/users/:id", userHandler.Get, authRequired)

	// --- Hotel routes ---
	e.GET("/api/hotels", hotelHandler.List)
	e.GET("/api/hotels/:id", hotelHandler.Get)
	e.POST("/api/hotels", hotelHandler.Create, authRequired, middleware.RBAC(domain.RoleAdmin))
	e.PUT("/api/hotels/:id", hotelHandler.Update, authRequired, middleware.RBAC(domain.RoleHotelManager))
	e.DELETE("/api/hotels/:id", hotelHandler.Delete, authRequired, middleware.RBAC(domain.RoleAdmin))

	// --- Booking routes ---
	e.POST("/api/bookings/:hotelId", bookingHandler.Book, authRequired)
	e.GET("/api/bookings/:id", bookingHandler.Get, authRequired)
	e.DELETE("/api/bookings/:id", bookingHandler.Delete, authRequired, middleware.RBAC(domain.RoleHotelManager))

	// --- Operational surface ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
