//go:build wireinject
// +build wireinject

package main

import (
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/config"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/dao/cache"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/handler"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/client"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/database"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/server"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/pkg/storage"
	"github.com/amanhasfallenintoriverincity/ohsung-ETA/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		storage.New,
		config.ProvideSessionConfig,
		config.ProvideUploadConfig,
		config.ProvideNeisConfig,
		server.NewGinEngine,

		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.MainPage), "*"),
		wire.Struct(new(handler.Neis), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil
}
