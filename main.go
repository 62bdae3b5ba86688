package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"storefront-service/controllers"
	"storefront-service/database"
	"storefront-service/logger"
	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLog, err := logger.Initialize(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	// Connect to the database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DBName:   cfg.PostgresDB,
		SSLMode:  cfg.PostgresSSLMode,
		TimeZone: cfg.PostgresTimeZone,
	})
	if err != nil {
		zapLog.Fatal("Could not connect to PostgreSQL", zap.Error(err))
	}
	defer database.Close(db)

	// Run migrations
	if err := models.Migrate(db); err != nil {
		zapLog.Fatal("Migration failed", zap.Error(err))
	}

	// Optional catalog cache
	redisClient := database.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if redisClient == nil {
		zapLog.Info("REDIS_ADDR not set, catalog caching disabled")
	}

	tokenService, err := services.NewTokenService(cfg.JWTSecret)
	if err != nil {
		zapLog.Fatal("Token service setup failed", zap.Error(err))
	}

	userRepo := repository.NewGormUserRepository(db)
	catalogRepo := repository.NewGormCatalogRepository(db)
	cartRepo := repository.NewGormCartRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)

	authService := services.NewAuthService(userRepo, tokenService)
	orderService := services.NewOrderService(orderRepo, zapLog)

	cache := controllers.NewCacheManager(redisClient, zapLog)
	authController := controllers.NewAuthController(authService)
	catalogController := controllers.NewCatalogController(catalogRepo, cache)
	cartController := controllers.NewCartController(cartRepo)
	orderController := controllers.NewOrderController(orderService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zapLog))

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	routes.RegisterRoutes(r, authController, catalogController, cartController, orderController, tokenService)

	zapLog.Info("Storefront service started", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zapLog.Fatal("Error starting server", zap.Error(err))
	}
}
