package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"vietmarket/internal/catalog"
	"vietmarket/internal/config"
	"vietmarket/internal/database"
	"vietmarket/internal/feed"
	"vietmarket/internal/gemini"
	"vietmarket/internal/handlers"
	"vietmarket/internal/metrics"
	"vietmarket/internal/middleware"
	"vietmarket/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("⚠️ user index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("⚠️ order index warning: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.AppEnv.RedisAddr,
		Password: config.AppEnv.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis unreachable: ", err)
	}
	log.Println("Redis connected to:", config.AppEnv.RedisAddr)

	submissions := store.NewSubmissionStore(rdb)
	sessions := store.NewSessionStore(rdb)

	reader := feed.NewReader(config.AppEnv.FeedBaseURL, config.AppEnv.SheetID, config.AppEnv.FeedTimeout)
	ctrl := catalog.NewController(reader, submissions)

	startupCtx, cancel := context.WithTimeout(context.Background(), config.AppEnv.FeedTimeout+5*time.Second)
	source := ctrl.Refresh(startupCtx)
	cancel()
	metrics.CatalogRefreshTotal.WithLabelValues(source.String()).Inc()

	var describer gemini.Describer
	if config.AppEnv.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), config.AppEnv.GeminiAPIKey)
		if err != nil {
			log.Fatal("gemini client: ", err)
		}
		defer geminiClient.Close()
		describer = geminiClient
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, description generation disabled")
		describer = gemini.Disabled{}
	}

	r := gin.Default()
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/products", handlers.GetProducts(ctrl))
	r.GET("/products/:id", handlers.GetProduct(ctrl))
	r.GET("/categories", handlers.GetCategories())

	r.POST("/auth/login", handlers.Login(db, sessions, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	user := r.Group("/")
	user.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		user.GET("/auth/me", handlers.GetMe(sessions))
		user.POST("/auth/logout", handlers.Logout(sessions))

		user.POST("/products", handlers.PostProduct(ctrl, sessions))
		user.POST("/products/describe", handlers.DescribeProduct(describer))
		user.POST("/sync", handlers.SyncCatalog(ctrl))

		user.POST("/orders", handlers.CreateOrder(db, ctrl))
		user.GET("/orders", handlers.GetOrders(db))

		user.POST("/admin/products/import", handlers.ImportProducts(ctrl, sessions))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
