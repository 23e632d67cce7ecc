package cache

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Flights is the process-wide flight-list cache. Nil when REDIS_ADDR is not
// configured; callers must check before use.
var Flights *FlightCache

// FlightCache keeps the serialized default flight listing in Redis so the
// most common read does not hit Postgres on every request.
type FlightCache struct {
	client *redis.Client
	ttl    time.Duration
}

const flightListKey = "cache:flights:list"

// Init wires the global cache from REDIS_ADDR / REDIS_PASSWORD / REDIS_DB
// environment variables. Without REDIS_ADDR the cache stays disabled.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	Flights = NewFlightCache(addr, os.Getenv("REDIS_PASSWORD"), db, 30*time.Second)
}

func NewFlightCache(addr, password string, db int, ttl time.Duration) *FlightCache {
	return &FlightCache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl:    ttl,
	}
}

// GetFlightList returns the cached listing payload, or nil on a miss.
func (c *FlightCache) GetFlightList(ctx context.Context) ([]byte, error) {
	data, err := c.client.Get(ctx, flightListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (c *FlightCache) SetFlightList(ctx context.Context, payload []byte) error {
	return c.client.Set(ctx, flightListKey, payload, c.ttl).Err()
}

// InvalidateFlightList drops the cached listing after a flight write.
func (c *FlightCache) InvalidateFlightList(ctx context.Context) error {
	return c.client.Del(ctx, flightListKey).Err()
}
