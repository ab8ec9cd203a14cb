package model

import "time"

// Item represents one tracked kitchen product.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ExpiryDate Date      `json:"expiryDate"`
	Quantity   string    `json:"quantity"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Item categories.
const (
	CategoryBeverages  = "beverages"
	CategoryDairy      = "dairy"
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryMeat       = "meat"
	CategoryOther      = "other"
)

// Defaults applied when a field is absent at creation.
const (
	DefaultQuantity = "1"
	DefaultCategory = CategoryOther
)

// Categories lists the recognized categories, in display order.
func Categories() []string {
	return []string{
		CategoryBeverages,
		CategoryDairy,
		CategoryVegetables,
		CategoryFruits,
		CategoryMeat,
		CategoryOther,
	}
}

// KnownCategory reports whether c is a recognized category. Matching is
// case-sensitive.
func KnownCategory(c string) bool {
	switch c {
	case CategoryBeverages, CategoryDairy, CategoryVegetables,
		CategoryFruits, CategoryMeat, CategoryOther:
		return true
	}
	return false
}

// EffectiveCategory maps unrecognized category values to "other". Unknown
// values are stored as-is but fall back to "other" for any
// category-conditional behavior.
func EffectiveCategory(c string) string {
	if KnownCategory(c) {
		return c
	}
	return CategoryOther
}

// Status returns the item's freshness status as of today.
func (i Item) Status(today time.Time) Status {
	return StatusOn(today, i.ExpiryDate)
}
