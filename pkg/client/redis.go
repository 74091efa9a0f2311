package client

import (
	"context"
	"time"

	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Fatal("connect redis error", zap.String("addr", conf.Redis.Addr()), zap.Error(err))
	}
	log.L.Info("redis client success")
	return client
}
