// Package messages stores buyer-to-seller messages about items.
package messages

import (
	"context"

	"github.com/slugmart/slugmart/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Message, error)
	ListByItemOwner(ctx context.Context, itemOwnerID string) ([]models.Message, error)
	ListBySender(ctx context.Context, senderID string) ([]models.Message, error)
	Create(ctx context.Context, info models.NewMessage) (*models.Message, error)
	Delete(ctx context.Context, id string) (bool, error)
}
