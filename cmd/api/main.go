package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pawsclinic/clinic-scheduler/internal/config"
	dbpkg "github.com/pawsclinic/clinic-scheduler/internal/db"
	"github.com/pawsclinic/clinic-scheduler/internal/logger"
	"github.com/pawsclinic/clinic-scheduler/internal/middleware"
	"github.com/pawsclinic/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.AppEnv)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, rdb)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
