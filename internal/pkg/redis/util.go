package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockRetryInterval = 200 * time.Millisecond

var unlockScript = redis.NewScript(`if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end`)

// KEYS[1] 数据 key，KEYS[2] 版本 key；ARGV: 期望版本、值、过期毫秒
var setIfVersionScript = redis.NewScript(`
local current = tonumber(redis.call('get', KEYS[2])) or 0
if current ~= tonumber(ARGV[1]) then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('set', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('set', KEYS[1], ARGV[2])
end
return 1
`)

// GetValue 获取字符串值，key 不存在时返回空串
func (s *Cache) GetValue(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetVersion 读取版本号，不存在视为 0
func (s *Cache) GetVersion(ctx context.Context, versionKey string) (int64, error) {
	version, err := s.rdb.Get(ctx, versionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

// BumpVersion 在同一事务里自增版本并删除 keys
func (s *Cache) BumpVersion(ctx context.Context, versionKey string, keys ...string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		if len(keys) > 0 {
			pipe.Del(ctx, keys...)
		}
		return nil
	})
	return err
}

// SetIfVersion 版本号仍为 version 时才写入，返回是否写入
func (s *Cache) SetIfVersion(ctx context.Context, key, versionKey string, version int64, value interface{}, expiration time.Duration) (bool, error) {
	n, err := setIfVersionScript.Run(ctx, s.rdb, []string{key, versionKey}, version, value, expiration.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// TryLock 尝试加锁，失败后最多再重试 retryTimes 次，retryTimes 为 -1 时一直重试
func (s *Cache) TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; ; i++ {
		success, err := s.rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}
		if retryTimes != -1 && i >= retryTimes {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

// UnLock 释放锁，只删除自己持有的锁
func (s *Cache) UnLock(ctx context.Context, key string, value interface{}) error {
	return unlockScript.Run(ctx, s.rdb, []string{key}, value).Err()
}
