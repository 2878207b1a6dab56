package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	crowdfundHTTP "crowdfund/internal/controller/http"
	"crowdfund/internal/model"
	"crowdfund/internal/repo/persistent"
	"crowdfund/internal/usecase"
	"crowdfund/pkg/cache"
	"crowdfund/pkg/config"
	"crowdfund/pkg/database"
	"crowdfund/pkg/jwt"
	"crowdfund/pkg/logger"
	"crowdfund/pkg/middleware"
	"crowdfund/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "crowdfund/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBAutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			log.Error("Failed to auto-migrate schema: %v", err)
			return nil, err
		}
		log.Info("Schema auto-migrated")
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Redis only backs rate limiting.
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s3Client.EnsureBucket(ctx); err != nil {
		log.Warn("Image bucket not ready: %v", err)
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
	}, nil
}

// Router builds the gin engine. It is separate from Run so tests can serve it
// without binding a port.
func (a *App) Router() *gin.Engine {
	store := persistent.NewStore(a.db)

	handlers := crowdfundHTTP.Handlers{
		Users:     crowdfundHTTP.NewUserHandler(usecase.NewUserUseCase(store, a.jwtService, a.s3Client, a.log), a.log),
		Campaigns: crowdfundHTTP.NewCampaignHandler(usecase.NewCampaignUseCase(store, a.s3Client, a.log), a.log),
		Donations: crowdfundHTTP.NewDonationHandler(usecase.NewDonationUseCase(store, a.log), a.log),
		Payments:  crowdfundHTTP.NewPaymentHandler(usecase.NewPaymentUseCase(store, a.log), a.log),
		Reviews:   crowdfundHTTP.NewReviewHandler(usecase.NewReviewUseCase(store, a.log), a.log),
		Comments:  crowdfundHTTP.NewCommentHandler(usecase.NewCommentUseCase(store, a.log), a.log),
		Follows:   crowdfundHTTP.NewFollowHandler(usecase.NewFollowUseCase(store, a.log), a.log),
	}

	r := gin.New()
	r.Use(gin.LoggerWithWriter(a.log.Writer()), gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(a.cfg.CORSOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	crowdfundHTTP.RegisterRoutes(api, handlers, a.jwtService,
		middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimit, a.cfg.RateLimitWindow))
	return r
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Crowdfund API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down crowdfund API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Crowdfund API exited")
	return nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"http://localhost:5173"}
	}
	return origins
}
