package memory

import (
	"context"
	"reflect"
	"sync"
	"testing"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	ids, err := r.ChatIDs(ctx)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no chats, got %v", ids)
	}

	for _, id := range []int64{42, -100123, 42, 7} {
		if err := r.Subscribe(ctx, id); err != nil {
			t.Fatalf("error should have been nil, was: %v", err)
		}
	}

	ids, _ = r.ChatIDs(ctx)
	if !reflect.DeepEqual(ids, []int64{-100123, 7, 42}) {
		t.Errorf("unexpected chats: %v", ids)
	}

	if ok, _ := r.IsSubscribed(ctx, 7); !ok {
		t.Errorf("chat 7 should be subscribed")
	}

	if err := r.Unsubscribe(ctx, 7); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if ok, _ := r.IsSubscribed(ctx, 7); ok {
		t.Errorf("chat 7 should not be subscribed")
	}
	if err := r.Unsubscribe(ctx, 999); err != nil {
		t.Errorf("unsubscribing an unknown chat should not fail: %v", err)
	}

	ids, _ = r.ChatIDs(ctx)
	if !reflect.DeepEqual(ids, []int64{-100123, 42}) {
		t.Errorf("unexpected chats: %v", ids)
	}
}

func TestRepository_concurrent(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			r.Subscribe(ctx, id)
			r.ChatIDs(ctx)
		}(i)
	}
	wg.Wait()

	ids, _ := r.ChatIDs(ctx)
	if len(ids) != 50 {
		t.Errorf("expected 50 chats, got %d", len(ids))
	}
}
