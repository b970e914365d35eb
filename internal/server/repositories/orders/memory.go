package orders

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items []models.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.items {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Order{}, r.items...), nil
}

func (r *MemoryRepository) Create(ctx context.Context, info models.NewOrder) (*models.Order, error) {
	for _, id := range []string{info.BuyerID, info.SellerID, info.ItemID} {
		if uuid.Validate(id) != nil {
			return nil, common.ErrInvalidInput
		}
	}
	o := models.Order{
		ID:             uuid.NewString(),
		BuyerID:        info.BuyerID,
		SellerID:       info.SellerID,
		ItemID:         info.ItemID,
		ShippingStatus: info.ShippingStatus,
		Data:           info.Data,
	}

	r.mu.Lock()
	r.items = append(r.items, o)
	r.mu.Unlock()

	return &o, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.items {
		if o.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id string, status models.ShippingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].ShippingStatus = status
			return true, nil
		}
	}
	return false, nil
}
