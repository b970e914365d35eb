// Package listings stores items offered for sale.
package listings

import (
	"context"

	"github.com/slugmart/slugmart/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	List(ctx context.Context, page models.Page) (*models.PaginatedListings, error)
	// Search matches term case-insensitively as a substring of brand, name or description.
	Search(ctx context.Context, term string, page models.Page) (*models.PaginatedListings, error)
	Create(ctx context.Context, info models.NewListing) (*models.Listing, error)
	Delete(ctx context.Context, id string) (bool, error)
	UpdateImages(ctx context.Context, id string, imageURLs []string) (bool, error)
}
