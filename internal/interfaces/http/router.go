// Package http wires the HTTP interface: router, middleware, and handlers.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	ticketUC "atgs/internal/application/ticket/usecases"
	userUC "atgs/internal/application/user/usecases"
	"atgs/internal/infrastructure/config"
	"atgs/internal/infrastructure/notification"
	"atgs/internal/infrastructure/ratelimit"
	"atgs/internal/infrastructure/repository"
	ticketHandlers "atgs/internal/interfaces/http/handlers/ticket"
	userHandlers "atgs/internal/interfaces/http/handlers/user"
	"atgs/internal/interfaces/http/middleware"
	"atgs/internal/shared/logger"
	"atgs/internal/shared/services/markdown"
	"atgs/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine        *gin.Engine
	ticketHandler *ticketHandlers.TicketHandler
	userHandler   *userHandlers.UserHandler
	getUserUC     userUC.GetUserExecutor
	limiter       ratelimit.Limiter
	limits        ratelimit.Limits
	logger        logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db)
	markdownSvc := markdown.NewService()

	var notifier notification.Notifier
	if cfg.Email.Enabled {
		notifier = notification.NewSMTPNotifier(&cfg.Email)
	}

	signupUC := userUC.NewSignupUseCase(userRepo, log)
	getUserUC := userUC.NewGetUserUseCase(userRepo, log)
	listUsersUC := userUC.NewListUsersUseCase(userRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, userRepo, markdownSvc, log)
	submitTicketUC := ticketUC.NewSubmitTicketUseCase(ticketRepo, userRepo, notifier, log)

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled && cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisLimiter(client)
	}

	return &Router{
		engine:        engine,
		ticketHandler: ticketHandlers.NewTicketHandler(listTicketsUC, submitTicketUC),
		userHandler:   userHandlers.NewUserHandler(signupUC, getUserUC, listUsersUC),
		getUserUC:     getUserUC,
		limiter:       limiter,
		limits: ratelimit.Limits{
			PerMinute: cfg.RateLimit.RequestsPerMinute,
			PerHour:   cfg.RateLimit.RequestsPerHour,
		},
		logger: log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS([]string{"*"}))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", healthCheck)

	writeLimit := middleware.RateLimit(r.limiter, r.limits, r.logger)
	identity := middleware.Identity(r.getUserUC)

	api := r.engine.Group("/api")
	{
		api.POST("/users", writeLimit, r.userHandler.Signup)
		api.GET("/users", r.userHandler.ListUsers)
		api.GET("/users/:id", r.userHandler.GetUser)

		api.GET("/tickets", identity, r.ticketHandler.ListTickets)
		api.POST("/tickets", identity, writeLimit, r.ticketHandler.SubmitTicket)
	}
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func healthCheck(c *gin.Context) {
	utils.SuccessResponse(c, 200, gin.H{"status": "ok"})
}
