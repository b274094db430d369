package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clipperbook/booking-api/internal/config"
	dbpkg "github.com/clipperbook/booking-api/internal/db"
	"github.com/clipperbook/booking-api/internal/infra/cache"
	"github.com/clipperbook/booking-api/internal/logger"
	"github.com/clipperbook/booking-api/internal/metrics"
	"github.com/clipperbook/booking-api/internal/middleware"
	"github.com/clipperbook/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	collect := metrics.NewCollector("booking_api")

	availabilityCache, err := cache.NewAvailabilityCache(cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(collect.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	routes.RegisterRoutes(r, db, log, collect, availabilityCache)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
