// Package orders stores purchases and their shipping state.
package orders

import (
	"context"

	"github.com/slugmart/slugmart/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	// Create stores the order as given; callers default the shipping status.
	Create(ctx context.Context, info models.NewOrder) (*models.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status models.ShippingStatus) (bool, error)
}
