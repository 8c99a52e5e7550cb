// File: services/booking/lock.go
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SlotLocker serializes booking creation per provider and date, so two
// concurrent requests for the same window cannot both pass the availability
// check before either inserts.
type SlotLocker interface {
	// Lock blocks until the (provider, date) lock is held or ctx ends.
	// The returned func releases the lock.
	Lock(ctx context.Context, providerID, date string) (func(), error)
}

// RedisSlotLocker implements SlotLocker with a Redis SET NX lease, so the
// serialization holds across server instances. The TTL bounds how long a
// crashed holder can keep the slot locked.
type RedisSlotLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSlotLocker builds a locker over the given Redis client.
func NewRedisSlotLocker(client *redis.Client) *RedisSlotLocker {
	return &RedisSlotLocker{Client: client, TTL: 10 * time.Second}
}

// unlockScript releases the lease only if we still hold it, so an expired
// lease never deletes a successor's lock.
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

func (l *RedisSlotLocker) Lock(ctx context.Context, providerID, date string) (func(), error) {
	key := fmt.Sprintf("booking:lock:%s:%s", providerID, date)
	token := uuid.New().String()
	ttl := l.TTL
	if ttl <= 0 {
		ttl = 10 * time.Second
	}

	for {
		ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquiring booking lock %s: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	release := func() {
		relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = unlockScript.Run(relCtx, l.Client, []string{key}, token).Err()
	}
	return release, nil
}
