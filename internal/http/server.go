package http

import (
	"net/http"
	"time"

	"github.com/betops/bonusledger/internal/infrastructure/auth"

	"github.com/betops/bonusledger/internal/http/handlers"
	"github.com/betops/bonusledger/internal/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router          *gin.Engine
	jwtService      auth.JWTService
	operatorHandler *handlers.OperatorHandler
	grantHandler    *handlers.GrantHandler
	ledgerHandler   *handlers.LedgerHandler
	gameHandler     *handlers.GameHandler
	playerHandler   *handlers.PlayerHandler
	errorHandler    *middleware.ErrorHandler
	addr            string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	operatorHandler *handlers.OperatorHandler,
	grantHandler *handlers.GrantHandler,
	ledgerHandler *handlers.LedgerHandler,
	gameHandler *handlers.GameHandler,
	playerHandler *handlers.PlayerHandler,
	errorHandler *middleware.ErrorHandler,
	addr string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	server := &Server{
		router:          router,
		jwtService:      jwtService,
		operatorHandler: operatorHandler,
		grantHandler:    grantHandler,
		ledgerHandler:   ledgerHandler,
		gameHandler:     gameHandler,
		playerHandler:   playerHandler,
		errorHandler:    errorHandler,
		addr:            addr,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", s.operatorHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			operatorRoutes := protected.Group("/operators")
			{
				operatorRoutes.GET("/me", s.operatorHandler.GetOperatorInfo)
			}

			gameRoutes := protected.Group("/games")
			{
				gameRoutes.GET("", s.gameHandler.List)
				gameRoutes.GET("/:id", s.gameHandler.Get)
			}

			playerRoutes := protected.Group("/players")
			{
				playerRoutes.GET("/search", s.playerHandler.Search)
				playerRoutes.GET("/:id", s.playerHandler.Get)
			}

			grantRoutes := protected.Group("/grants")
			{
				grantRoutes.POST("", s.grantHandler.Submit)
				grantRoutes.POST("/preview", s.grantHandler.Preview)
				grantRoutes.POST("/:id/referrer-retry", s.grantHandler.RetryReferrerCredit)
				grantRoutes.GET("", s.ledgerHandler.List)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.router.Run(s.addr)
}
