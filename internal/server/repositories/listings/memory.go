package listings

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Listing
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.Listing)}
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	l.ImageURLs = slices.Clone(l.ImageURLs)
	return &l, nil
}

func (r *MemoryRepository) List(ctx context.Context, page models.Page) (*models.PaginatedListings, error) {
	return r.page(page, func(models.Listing) bool { return true }), nil
}

func (r *MemoryRepository) Search(ctx context.Context, term string, page models.Page) (*models.PaginatedListings, error) {
	needle := strings.ToLower(term)
	return r.page(page, func(l models.Listing) bool {
		return strings.Contains(strings.ToLower(l.Brand), needle) ||
			strings.Contains(strings.ToLower(l.Name), needle) ||
			strings.Contains(strings.ToLower(l.Description), needle)
	}), nil
}

func (r *MemoryRepository) Create(ctx context.Context, info models.NewListing) (*models.Listing, error) {
	if uuid.Validate(info.OwnerID) != nil {
		return nil, common.ErrInvalidInput
	}
	urls := slices.Clone(info.ImageURLs)
	if urls == nil {
		urls = []string{}
	}
	l := models.Listing{
		ID:          uuid.NewString(),
		OwnerID:     info.OwnerID,
		Brand:       info.Brand,
		Name:        info.Name,
		Description: info.Description,
		ImageURLs:   urls,
	}

	r.mu.Lock()
	r.items[l.ID] = l
	r.mu.Unlock()

	l.ImageURLs = slices.Clone(urls)
	return &l, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *MemoryRepository) UpdateImages(ctx context.Context, id string, imageURLs []string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[id]
	if !ok {
		return false, nil
	}
	l.ImageURLs = slices.Clone(imageURLs)
	if l.ImageURLs == nil {
		l.ImageURLs = []string{}
	}
	r.items[id] = l
	return true, nil
}

func (r *MemoryRepository) page(page models.Page, keep func(models.Listing) bool) *models.PaginatedListings {
	page = page.Normalize()

	r.mu.RLock()
	matched := make([]models.Listing, 0, len(r.items))
	for _, l := range r.items {
		if keep(l) {
			l.ImageURLs = slices.Clone(l.ImageURLs)
			matched = append(matched, l)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	out := &models.PaginatedListings{Listings: []models.Listing{}, TotalCount: len(matched)}
	start := page.Offset()
	if start >= len(matched) {
		return out
	}
	end := min(start+page.Size, len(matched))
	out.Listings = matched[start:end]
	return out
}
