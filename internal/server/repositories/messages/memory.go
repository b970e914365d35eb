package messages

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/server/models"
)

// MemoryRepository keeps messages in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []models.Message
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.items {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) ListByItemOwner(ctx context.Context, itemOwnerID string) ([]models.Message, error) {
	return r.filter(func(m models.Message) bool { return m.ItemOwnerID == itemOwnerID }), nil
}

func (r *MemoryRepository) ListBySender(ctx context.Context, senderID string) ([]models.Message, error) {
	return r.filter(func(m models.Message) bool { return m.SenderID == senderID }), nil
}

func (r *MemoryRepository) Create(ctx context.Context, info models.NewMessage) (*models.Message, error) {
	if uuid.Validate(info.ItemOwnerID) != nil || uuid.Validate(info.SenderID) != nil {
		return nil, common.ErrInvalidInput
	}
	m := models.Message{
		ID:          uuid.NewString(),
		ItemOwnerID: info.ItemOwnerID,
		SenderID:    info.SenderID,
		Content:     info.Content,
	}

	r.mu.Lock()
	r.items = append(r.items, m)
	r.mu.Unlock()

	return &m, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.items {
		if m.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) filter(keep func(models.Message) bool) []models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Message{}
	for _, m := range r.items {
		if keep(m) {
			result = append(result, m)
		}
	}
	return result
}
