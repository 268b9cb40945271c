package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bqviet86/cmict-server/config"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации пользователя", err)
	}

	if err := r.client.Client.Set(ctx, r.key(user.UUID), data, r.ttl).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка сохранения в Redis", err)
	}

	return nil
}

// GetUser возвращает nil, nil при промахе
func (r *CacheRepository) GetUser(ctx context.Context, uuid string) (*model.User, error) {
	val, err := r.client.Client.Get(ctx, r.key(uuid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] ошибка получения пользователя из Redis", err)
	}

	var user model.User
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, util.LogError("[CacheRepo] ошибка десериализации пользователя из кэша", err)
	}
	return &user, nil
}

func (r *CacheRepository) DeleteUser(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.key(uuid)).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка удаления пользователя из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(uuid string) string {
	return fmt.Sprintf("user:%s", uuid)
}
