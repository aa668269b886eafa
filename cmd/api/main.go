package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yaalstudio/salon-agenda/internal/config"
	dbpkg "github.com/yaalstudio/salon-agenda/internal/db"
	"github.com/yaalstudio/salon-agenda/internal/httperr"
	"github.com/yaalstudio/salon-agenda/internal/logging"
	"github.com/yaalstudio/salon-agenda/internal/middleware"
	"github.com/yaalstudio/salon-agenda/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.Env)
	defer logging.Sync()

	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logging.Log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logging.Log.Warn("redis unreachable, rate limiting will fail open", zap.Error(err))
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.HTTPError{
			Error:  "Erro interno",
			Detail: fmt.Sprint(rec),
		})
	}))
	r.Use(middleware.CORSMiddleware())

	auditDispatcher := routes.RegisterRoutes(r, db, cfg, rdb)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logging.SLog.Infof("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Log.Error("shutdown error", zap.Error(err))
	}
	auditDispatcher.Close()
	if err := dbpkg.Close(db); err != nil {
		logging.Log.Error("failed to close database", zap.Error(err))
	}

	logging.Log.Info("server stopped")
}
