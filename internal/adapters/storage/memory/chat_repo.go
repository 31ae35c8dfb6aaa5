package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"doggo-marketplace/internal/domain/chat"
)

type chatRepo struct {
	mu       sync.RWMutex
	messages []chat.Message
}

func newChatRepo() *chatRepo {
	return &chatRepo{}
}

func (r *chatRepo) Create(ctx context.Context, m chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("message id required")
	}
	r.messages = append(r.messages, m)
	return nil
}

func (r *chatRepo) ListConversation(ctx context.Context, userA, userB string) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]chat.Message, 0)
	for _, m := range r.messages {
		if (m.SenderUserID == userA && m.ReceiverUserID == userB) ||
			(m.SenderUserID == userB && m.ReceiverUserID == userA) {
			out = append(out, m)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
