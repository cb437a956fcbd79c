package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCategoryDAO,
	NewForumDAO,
	NewThreadDAO,
	NewPostDAO,
	NewSubscriptionDAO,
	NewPostCountDAO,
)
