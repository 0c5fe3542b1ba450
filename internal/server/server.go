package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fitconnect/internal/auth"
	"fitconnect/internal/availability"
	"fitconnect/internal/booking"
	"fitconnect/internal/config"
	"fitconnect/internal/connection"
	"fitconnect/internal/course"
	"fitconnect/internal/directory"
	"fitconnect/internal/logger"
	"fitconnect/internal/user"

	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by the server.
type Handlers struct {
	Users        *user.Handler
	Availability *availability.Handler
	Bookings     *booking.Handler
	Connections  *connection.Handler
	Courses      *course.Handler
	Directory    *directory.Handler
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
	stop   context.CancelFunc
}

func New(cfg *config.Config, storage string, h Handlers) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	limiter := NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		corsMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		RateLimitMiddleware(limiter),
	)

	registerRoutes(router, cfg.JWTSecret, storage, h)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		config: cfg,
		stop:   stop,
	}
}

func registerRoutes(router *gin.Engine, secret, storage string, h Handlers) {
	router.GET("/", Landing)
	router.GET("/health", Health(storage))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)
	router.NoRoute(redirectHome)

	public := router.Group("/auth")
	{
		public.POST("/register", h.Users.Register)
		public.POST("/login", h.Users.Login)
		public.POST("/refresh", h.Users.RefreshToken)
	}

	dir := router.Group("/directory")
	{
		dir.GET("/members", h.Directory.List)
		dir.GET("/members/page", h.Directory.Page)
		dir.POST("/members", h.Directory.Add)
		dir.DELETE("/members/:id", h.Directory.Delete)
		dir.POST("/reset", h.Directory.Reset)
		dir.POST("/clear", h.Directory.Clear)
	}

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(secret))
	{
		protected.GET("/me", h.Users.Me)
		protected.PUT("/profile", h.Users.UpdateProfile)
		protected.GET("/my-bookings", h.Bookings.MyBookings)
		protected.GET("/trainers/:id/availability", h.Availability.GetForTrainer)
		protected.GET("/trainers/:id/courses", h.Courses.ListForTrainer)
		protected.GET("/courses/:id", h.Courses.Get)
		protected.POST("/bookings/:id/cancel", h.Bookings.Cancel)
	}

	trainer := protected.Group("/")
	trainer.Use(auth.RequireRole(auth.RoleTrainer))
	{
		trainer.GET("/availability", h.Availability.GetMine)
		trainer.POST("/availability/slots", h.Availability.AddSlot)
		trainer.DELETE("/availability/slots/:day/:index", h.Availability.RemoveSlot)
		trainer.GET("/clients", h.Users.ListClients)
		trainer.GET("/clients/:id", h.Users.GetClient)
		trainer.GET("/courses", h.Courses.ListMine)
		trainer.POST("/courses", h.Courses.Create)
		trainer.POST("/bookings/:id/confirm", h.Bookings.Confirm)
		trainer.POST("/bookings/:id/reject", h.Bookings.Reject)
		trainer.POST("/bookings/:id/complete", h.Bookings.Complete)
	}

	client := protected.Group("/")
	client.Use(auth.RequireRole(auth.RoleClient))
	{
		client.GET("/trainers", h.Users.ListTrainers)
		client.GET("/trainers/:id", h.Users.GetTrainer)
		client.GET("/trainers/:id/slots", h.Bookings.BookableSlots)
		client.POST("/trainers/:id/connect", h.Connections.Connect)
		client.POST("/bookings", h.Bookings.Book)
		client.POST("/courses/:id/enroll", h.Courses.Enroll)
		client.GET("/connections", h.Connections.List)
		client.GET("/my-courses", h.Courses.MyCourses)
		client.PUT("/goals", h.Users.UpdateGoals)
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	logger.Info("Server listening", "addr", s.http.Addr, "env", s.config.Env)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	defer s.stop()
	return s.http.Shutdown(ctx)
}
