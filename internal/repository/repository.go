package repository

import "context"

// Subscriptions stores the chats that receive scheduled broadcasts.
type Subscriptions interface {
	Subscribe(ctx context.Context, chatID int64) error
	Unsubscribe(ctx context.Context, chatID int64) error
	IsSubscribed(ctx context.Context, chatID int64) (bool, error)
	ChatIDs(ctx context.Context) ([]int64, error)
}
