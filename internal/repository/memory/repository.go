package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/omarshaarawi/cartolabot/internal/repository"
)

type Repository struct {
	chats map[int64]struct{}
	mu    sync.RWMutex
}

var _ repository.Subscriptions = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{chats: make(map[int64]struct{})}
}

func (r *Repository) Subscribe(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats[chatID] = struct{}{}
	return nil
}

func (r *Repository) Unsubscribe(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chats, chatID)
	return nil
}

func (r *Repository) IsSubscribed(_ context.Context, chatID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.chats[chatID]
	return ok, nil
}

func (r *Repository) ChatIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.chats))
	for id := range r.chats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
