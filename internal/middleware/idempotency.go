package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	IdempotencyCacheKey  = "idempotency_cache_key"
	IdempotencyLockKey   = "idempotency_lock_key"

	IdempotencyResultTTL = 24 * time.Hour
	idempotencyLockTTL   = 30 * time.Second
)

// Idempotency replays the stored result of a POST carrying an
// Idempotency-Key header, and rejects a duplicate while the first one is
// still running. The handler stores its result under IdempotencyCacheKey
// and releases IdempotencyLockKey.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyKeyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString(ContextUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached json.RawMessage
			if json.Unmarshal([]byte(val), &cached) == nil {
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			log.Warn("idempotency cache lookup failed", zap.String("key", cacheKey), zap.Error(err))
		}

		// Lock pendek supaya hilang sendiri kalau server crash.
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"request with this idempotency key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}
