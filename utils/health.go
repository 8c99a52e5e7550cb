package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the snapshot served on /health: one bool for Mongo and one
// per Redis client (cache, realtime, reminder queue).
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the backing stores once immediately and then
// every minute, keeping the snapshot fresh for the health endpoint.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisHealth := make([]bool, 0, len(redisClients))
		for _, client := range redisClients {
			redisHealth = append(redisHealth, client.Ping(ctx).Err() == nil)
		}
		mongoHealthy := mongoClient.Ping(ctx, nil) == nil

		healthMu.Lock()
		currentHealth = HealthStatus{
			Mongo:     mongoHealthy,
			Redis:     redisHealth,
			CheckedAt: time.Now(),
		}
		healthMu.Unlock()
	}

	go func() {
		probe()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
