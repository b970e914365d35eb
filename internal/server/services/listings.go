package services

import (
	"context"
	"strings"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/models"
	"github.com/slugmart/slugmart/internal/server/repositories/listings"
)

type ListingService struct {
	repo   listings.Repository
	logger logging.Logger
}

func NewListingService(repo listings.Repository, logger logging.Logger) *ListingService {
	return &ListingService{repo: repo, logger: logger.With("module", "listings")}
}

func (s *ListingService) Listing(ctx context.Context, id string) (*models.Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "get listing", err, common.ErrListingNotFound)
	}
	return l, nil
}

// AllListings returns one page of listings; page and size below 1 fall back
// to the defaults.
func (s *ListingService) AllListings(ctx context.Context, page models.Page) (*models.PaginatedListings, error) {
	res, err := s.repo.List(ctx, page.Normalize())
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "list listings", err, common.ErrorInternal)
	}
	return res, nil
}

func (s *ListingService) SearchListings(ctx context.Context, term string, page models.Page) (*models.PaginatedListings, error) {
	res, err := s.repo.Search(ctx, strings.TrimSpace(term), page.Normalize())
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "search listings", err, common.ErrorInternal)
	}
	return res, nil
}

func (s *ListingService) CreateListing(ctx context.Context, info models.NewListing) (*models.Listing, error) {
	if info.OwnerID == "" || info.Brand == "" || info.Name == "" || info.Description == "" {
		return nil, common.ErrInvalidInput
	}
	if info.ImageURLs == nil {
		info.ImageURLs = []string{}
	}

	l, err := s.repo.Create(ctx, info)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "create listing", err, common.ErrorInternal)
	}
	s.logger.Info(ctx, "listing created", "listing_id", l.ID, "owner_id", l.OwnerID)
	return l, nil
}

func (s *ListingService) DeleteListing(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, mapRepoError(ctx, s.logger, "delete listing", err, common.ErrListingNotFound)
	}
	return ok, nil
}

// UpdateListingImages replaces the image list of a listing.
func (s *ListingService) UpdateListingImages(ctx context.Context, id string, imageURLs []string) (bool, error) {
	if imageURLs == nil {
		imageURLs = []string{}
	}
	ok, err := s.repo.UpdateImages(ctx, id, imageURLs)
	if err != nil {
		return false, mapRepoError(ctx, s.logger, "update listing images", err, common.ErrListingNotFound)
	}
	return ok, nil
}
