package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"parishledger/internal/database"
	"parishledger/internal/modules/auth"
	"parishledger/internal/modules/celebration"
	"parishledger/internal/modules/dashboard"
	"parishledger/internal/modules/intention"
	"parishledger/internal/modules/live"
	"parishledger/internal/modules/report"
	"parishledger/internal/modules/search"
	jwtsvc "parishledger/internal/pkg/jwt"
	"parishledger/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := envOrDefault("DATABASE_URL", "parish.db")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	addr := envOrDefault("ADDR", ":8080")

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	store, err := repository.NewSnapshotStore(db)
	if err != nil {
		log.Fatal(err)
	}
	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := live.NewHub()
	defer hub.Close()

	celebrationService := celebration.NewService(store, repository.CelebrationsKey, hub, log.Printf)
	intentionService := intention.NewService(store, repository.IntentionsKey, hub, log.Printf)

	ctx := context.Background()
	celebrationService.Hydrate(ctx, repository.SeedCelebrations())
	intentionService.Hydrate(ctx, repository.SeedIntentions())

	authService := auth.NewService(userRepo, j)

	authHandler := auth.NewHandler(authService)
	celebrationHandler := celebration.NewHandler(celebrationService)
	intentionHandler := intention.NewHandler(intentionService)
	searchHandler := search.NewHandler(celebrationService)
	reportHandler := report.NewHandler(celebrationService)
	dashboardHandler := dashboard.NewHandler(celebrationService, intentionService)
	liveHandler := live.NewHandler(hub)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		liveHandler.RegisterRoutes(v1)

		// protected (ledger endpoints)
		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			celebrationHandler.RegisterRoutes(protected)
			intentionHandler.RegisterRoutes(protected)
			searchHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing Authorization header",
				},
			})
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Empty token",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("username", claims.Username)

		c.Next()
	}
}
