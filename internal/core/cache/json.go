package cache

import (
	"context"
	"encoding/json"
	"time"
)

// GetOrLoadJSON 读穿透缓存的 JSON 封装。
// 回源返回 nil 时直接透传，不缓存未命中。
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	b, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		if v == nil {
			return nil, nil
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	// 存量的 "null" 值同样按未命中处理
	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}
