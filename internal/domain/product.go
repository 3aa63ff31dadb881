package domain

import "time"

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Category   string    `json:"category"`
	Material   string    `json:"material"`
	Price      float64   `json:"price"`
	IsFeatured bool      `json:"is_featured"`
	IsActive   bool      `json:"is_active"`
	Images     []string  `json:"images,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProductListOptions controls active catalog listings. Listings are ordered
// featured products first, then by ID, so that equal inputs always give equal output.
type ProductListOptions struct {
	ExcludeIDs   []string
	OnlyFeatured bool
	Limit        int
}
