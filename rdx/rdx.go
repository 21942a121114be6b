package rdx

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var errNoConn = errors.New("redis not connected")

var Conn *redis.Client

// Init connects the package client. The cache is best-effort: callers
// treat every helper error as a miss.
func Init(addr string) error {
	Conn = redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return Conn.Ping(ctx).Err()
}

func RdxSet(key, value string) error {
	if Conn == nil {
		return errNoConn
	}
	return Conn.Set(context.Background(), key, value, 0).Err()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	if Conn == nil {
		return errNoConn
	}
	return Conn.Set(context.Background(), key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", errNoConn
	}
	return Conn.Get(context.Background(), key).Result()
}

func RdxDel(key string) (int64, error) {
	if Conn == nil {
		return 0, errNoConn
	}
	return Conn.Del(context.Background(), key).Result()
}
