package storage

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "fitconnect:"

// casScript writes the payload only if the stored version still equals
// ARGV[1]; it returns the new version or -1.
var casScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if (current or '0') ~= ARGV[1] then
	return -1
end
local nextVersion = tonumber(ARGV[1]) + 1
redis.call('HSET', KEYS[1], 'data', ARGV[2], 'version', nextVersion)
return nextVersion
`)

// RedisStore keeps each namespace in a hash with "data" and "version" fields.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, int64, error) {
	fields, err := s.client.HGetAll(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return nil, 0, err
	}
	if len(fields) == 0 {
		return nil, 0, nil
	}

	version, err := strconv.ParseInt(fields["version"], 10, 64)
	if err != nil {
		return nil, 0, err
	}
	return []byte(fields["data"]), version, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, data []byte, version int64) (int64, error) {
	next, err := casScript.Run(ctx, s.client, []string{redisKeyPrefix + key}, strconv.FormatInt(version, 10), string(data)).Int64()
	if err != nil {
		return 0, err
	}
	if next < 0 {
		return 0, ErrVersionConflict
	}
	return next, nil
}

func (s *RedisStore) Name() string {
	return "redis"
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
