package models

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type Listing struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerId"`
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls"`
}

type NewListing struct {
	OwnerID     string   `json:"ownerId"`
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls"`
}

type PaginatedListings struct {
	Listings   []Listing `json:"listings"`
	TotalCount int       `json:"totalCount"`
}

// Page is a 1-based offset/limit window.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps out-of-range values to the defaults.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
