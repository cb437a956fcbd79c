package server

import (
	"Agora/handler"
)

type Handlers struct {
	Category     *handler.CategoryHandler
	Forum        *handler.ForumHandler
	Thread       *handler.ThreadHandler
	Post         *handler.PostHandler
	Subscription *handler.SubscriptionHandler
	Admin        *handler.AdminHandler
}
