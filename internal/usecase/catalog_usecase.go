// Package usecase defines the application's use case interfaces and the
// request/criteria types shared with the delivery layer.
package usecase

import "herbaciarnia/internal/domain/entity"

// Sort keys accepted by ProductCriteria. An empty key leaves the list in
// catalog order; the storefront default is SortPopularityDesc.
const (
	SortNameAsc        = "name-asc"
	SortNameDesc       = "name-desc"
	SortPriceAsc       = "price-asc"
	SortPriceDesc      = "price-desc"
	SortPopularityDesc = "popularity-desc"
	SortNewest         = "newest"
)

// CategoryAll is the sentinel category value that disables category filtering.
const CategoryAll = "all"

// ProductCriteria narrows and orders a product list. Zero values mean
// "no constraint"; all supplied filters are combined with logical AND.
type ProductCriteria struct {
	// SearchText is matched case-insensitively as a substring against
	// name, description and category (OR across the three fields).
	SearchText string

	// Category keeps only exact category matches; "" or "all" disables it.
	Category string

	// OnSaleOnly keeps only products with an active promotion.
	OnSaleOnly bool

	// InStockOnly keeps only available products.
	InStockOnly bool

	// PriceMin/PriceMax bound the price inclusively when the corresponding
	// pointer is set.
	PriceMin *float64
	PriceMax *float64

	// SortKey is one of the Sort* constants; "" keeps the incoming order.
	SortKey string
}

// Option is a labelled choice rendered by the storefront filter UI.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SortOptions lists the sort orders offered by the shop view.
var SortOptions = []Option{
	{ID: SortPopularityDesc, Name: "Najpopularniejsze"},
	{ID: SortPriceAsc, Name: "Cena: od najniższej"},
	{ID: SortPriceDesc, Name: "Cena: od najwyższej"},
	{ID: SortNameAsc, Name: "Nazwa: A-Z"},
	{ID: SortNameDesc, Name: "Nazwa: Z-A"},
	{ID: SortNewest, Name: "Nowości"},
}

// CategoryOptions lists the tea categories offered by the shop view.
var CategoryOptions = []Option{
	{ID: CategoryAll, Name: "Wszystkie"},
	{ID: "zielona", Name: "Zielona"},
	{ID: "czarna", Name: "Czarna"},
	{ID: "biała", Name: "Biała"},
	{ID: "oolong", Name: "Oolong"},
	{ID: "pu-erh", Name: "Pu-erh"},
	{ID: "ziołowa", Name: "Ziołowa"},
	{ID: "owocowa", Name: "Owocowa"},
}

// CatalogMeta seeds the storefront filter UI.
type CatalogMeta struct {
	PriceMin   float64  `json:"priceMin"`
	PriceMax   float64  `json:"priceMax"`
	Categories []Option `json:"categories"`
	SortKeys   []Option `json:"sortKeys"`
}

// CatalogUsecase exposes catalog browsing, searching and filtering.
type CatalogUsecase interface {
	// ListProducts returns the catalog narrowed and ordered by the criteria.
	ListProducts(criteria ProductCriteria) []entity.Product

	// GetProduct returns a single product or ErrProductNotFound.
	GetProduct(id int) (entity.Product, error)

	// Meta returns the filter bounds and option lists for the shop view.
	Meta() CatalogMeta
}
