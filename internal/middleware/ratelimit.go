package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/yaalstudio/salon-agenda/internal/logging"
)

// counter é o recorte do client Redis que o limiter usa.
type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
}

// RateLimit limita os POSTs dos formulários públicos por IP, janela
// fixa de um minuto em Redis. Redis fora do ar não derruba a API:
// falha aberta.
func RateLimit(rdb *redis.Client, limit int) gin.HandlerFunc {
	return rateLimit(rdb, limit)
}

func rateLimit(rdb counter, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.FullPath()

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			logging.Log.Warn("rate limit unavailable", zap.Error(err))
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(c.Request.Context(), key, time.Minute)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Muitas requisições, tente novamente em instantes",
			})
			return
		}

		c.Next()
	}
}
