// Package entity contains the core business objects of the project.
package entity

// Product is a single catalog record. The catalog is immutable for the
// lifetime of the process, so products are always passed around as value
// snapshots. JSON field names follow the persisted storefront layout.
type Product struct {
	ID                   int     `json:"id" validate:"required,gt=0"`
	Name                 string  `json:"name" validate:"required"`
	Price                float64 `json:"price" validate:"required,gt=0"`
	Image                string  `json:"image"`
	Category             string  `json:"category" validate:"required"`
	Promotion            bool    `json:"promotion"`
	PriceBeforePromotion float64 `json:"priceBeforePromotion,omitempty"`
	Description          string  `json:"description" validate:"required"`
	Availability         bool    `json:"availability"`
	Popularity           float64 `json:"popularity" validate:"gte=0,lte=5"`
	LowestPrice30Days    float64 `json:"lowestPrice30Days,omitempty"`
}
