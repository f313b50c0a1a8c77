package entity

import (
	"fmt"
	"time"
)

// Item is a marketplace listing under negotiation. Prices always satisfy
// 0 <= MinimumPrice <= TargetPrice <= ListingPrice; NewItem enforces this
// at construction so the rest of the engine never re-checks it.
type Item struct {
	ID           string    `json:"id" firestore:"id"`
	Name         string    `json:"name" firestore:"name"`
	Description  string    `json:"description" firestore:"description"`
	Category     string    `json:"category,omitempty" firestore:"category,omitempty"`
	ListingPrice float64   `json:"listing_price" firestore:"listingPrice"`
	TargetPrice  float64   `json:"target_price" firestore:"targetPrice"`
	MinimumPrice float64   `json:"minimum_price" firestore:"minimumPrice"`
	Condition    string    `json:"condition" firestore:"condition"`
	Stock        int       `json:"stock" firestore:"stock"`
	IsActive     bool      `json:"is_active" firestore:"isActive"`
	CreatedBy    string    `json:"created_by,omitempty" firestore:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

// PriceBand is the triple bounding a negotiation; it is the only item
// data the price decision needs.
type PriceBand struct {
	Minimum float64 `json:"minimum"`
	Target  float64 `json:"target"`
	Listing float64 `json:"listing"`
}

const (
	// Defaults applied when a listing arrives with only a listing price.
	defaultTargetRatio  = 0.85
	defaultMinimumRatio = 0.70
)

// NewItem validates and constructs an Item. A zero target or minimum is
// derived from the listing price using the default negotiation ratios.
func NewItem(id, name, description string, listing, target, minimum float64) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("item id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if listing < 0 {
		return nil, fmt.Errorf("listing price must not be negative")
	}
	if target == 0 {
		target = listing * defaultTargetRatio
	}
	if minimum == 0 {
		minimum = listing * defaultMinimumRatio
	}
	if minimum < 0 || target < 0 {
		return nil, fmt.Errorf("prices must not be negative")
	}
	if minimum > target || target > listing {
		return nil, fmt.Errorf("prices must satisfy minimum <= target <= listing")
	}

	now := time.Now()
	return &Item{
		ID:           id,
		Name:         name,
		Description:  description,
		ListingPrice: listing,
		TargetPrice:  target,
		MinimumPrice: minimum,
		Stock:        1,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (i *Item) Band() PriceBand {
	return PriceBand{
		Minimum: i.MinimumPrice,
		Target:  i.TargetPrice,
		Listing: i.ListingPrice,
	}
}
