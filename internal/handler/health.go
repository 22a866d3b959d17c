package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/infra"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// Checks DB and Redis connectivity plus the SMTP circuit-breaker state;
// never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		// Stuck e-mail jobs show up here; depth -1 means Redis is unreachable.
		emailDLQ, err := worker.DLQLength(ctx, rdb, worker.QueueNotifyEmail)
		if err != nil {
			emailDLQ = -1
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":        status == http.StatusOK,
			"db":        dbStatus,
			"redis":     redisStatus,
			"smtp_cb":   smtpCB.State().String(),
			"email_dlq": emailDLQ,
		})
	}
}
