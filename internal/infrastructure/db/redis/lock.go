package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix = "stayease:hotel-lock:"
	lockTTL       = 10 * time.Second
	retryInterval = 50 * time.Millisecond
)

// HotelLock serializes booking admission per hotel across API instances using
// a SET NX lease. Acquire polls until the lease is obtained or ctx is done;
// the lease expires after lockTTL so a crashed holder cannot block a hotel
// forever. Release deletes the key only if this holder still owns it.
type HotelLock struct {
	client *redis.Client
}

func NewHotelLock(client *redis.Client) *HotelLock {
	return &HotelLock{client: client}
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (h *HotelLock) Acquire(ctx context.Context, hotelID string) (func(), error) {
	key := lockKeyPrefix + hotelID
	token := uuid.NewString()

	for {
		ok, err := h.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire hotel lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		_ = releaseScript.Run(ctx, h.client, []string{key}, token).Err()
	}
	return release, nil
}
