package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an in-process miniredis server and returns a client bound
// to it. The client is a singleton shared by every scenario.
func NewRedis() *redis.Client {
	if redisConn == nil {
		redisConnOnce.Do(func() {
			redisConn = openRedisConn()
		})
	}
	return redisConn
}

func openRedisConn() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{
		Addr: miniRedis.Addr(),
	})
}

// ClearRedis drops every key so scenarios start from an empty cache.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
