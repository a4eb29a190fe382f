package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/omarshaarawi/cartolabot/internal/repository"
	"github.com/redis/go-redis/v9"
)

const DefaultKey = "cartolabot:subscriptions"

// Repository keeps subscribed chat IDs in a Redis set so they survive
// restarts.
type Repository struct {
	client *redis.Client
	key    string
}

var _ repository.Subscriptions = (*Repository)(nil)

func NewRepository(client *redis.Client, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{client: client, key: key}
}

func (r *Repository) Subscribe(ctx context.Context, chatID int64) error {
	if err := r.client.SAdd(ctx, r.key, chatID).Err(); err != nil {
		return fmt.Errorf("subscribing chat %d: %w", chatID, err)
	}
	return nil
}

func (r *Repository) Unsubscribe(ctx context.Context, chatID int64) error {
	if err := r.client.SRem(ctx, r.key, chatID).Err(); err != nil {
		return fmt.Errorf("unsubscribing chat %d: %w", chatID, err)
	}
	return nil
}

func (r *Repository) IsSubscribed(ctx context.Context, chatID int64) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, chatID).Result()
	if err != nil {
		return false, fmt.Errorf("checking chat %d: %w", chatID, err)
	}
	return ok, nil
}

func (r *Repository) ChatIDs(ctx context.Context) ([]int64, error) {
	members, err := r.client.SMembers(ctx, r.key).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chat id %q in %s: %w", m, r.key, err)
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
