//go:build wireinject
// +build wireinject

package main

import (
	"Agora/config"
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/handler"
	"Agora/pkg/client"
	"Agora/pkg/database"
	"Agora/pkg/server"
	"Agora/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.CategoryHandler), "*"),
		wire.Struct(new(handler.ForumHandler), "*"),
		wire.Struct(new(handler.ThreadHandler), "*"),
		wire.Struct(new(handler.PostHandler), "*"),
		wire.Struct(new(handler.SubscriptionHandler), "*"),
		wire.Struct(new(handler.AdminHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
		wire.Bind(new(server.ReconcileRunner), new(*service.ReconcileService)),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}

func InitReconcile(cfg *config.Config) service.IReconcileService {
	wire.Build(

		client.NewRedisClient,
		cache.ProviderSet,

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
