package service

import (
	"Agora/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(EditPolicy), "*"),
	wire.Struct(new(PropagationService), "*"),

	wire.Struct(new(ForumService), "*"),
	wire.Bind(new(IForumService), new(*ForumService)),

	wire.Struct(new(ThreadService), "*"),
	wire.Bind(new(IThreadService), new(*ThreadService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(SubscriptionService), "*"),
	wire.Bind(new(ISubscriptionService), new(*SubscriptionService)),

	wire.Struct(new(ReconcileService), "*"),
	wire.Bind(new(IReconcileService), new(*ReconcileService)),

	wire.Bind(new(ActivitySink), new(*cache.ActivityStorage)),
)
