package impl

import (
	"sort"
	"strings"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/usecase"
)

// filterAndSort is the pure filter/sort engine. It never mutates or extends
// the input: the result is always an ordered subset of products. Filters are
// independent predicates combined with AND; the sort is stable so ties keep
// their catalog order.
func filterAndSort(products []entity.Product, criteria usecase.ProductCriteria) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if matchesCriteria(product, criteria) {
			filtered = append(filtered, product)
		}
	}

	sortProducts(filtered, criteria.SortKey)

	return filtered
}

func matchesCriteria(product entity.Product, criteria usecase.ProductCriteria) bool {
	if search := strings.TrimSpace(criteria.SearchText); search != "" {
		if !matchesSearch(product, search) {
			return false
		}
	}

	if criteria.Category != "" && criteria.Category != usecase.CategoryAll {
		if product.Category != criteria.Category {
			return false
		}
	}

	if criteria.OnSaleOnly && !product.Promotion {
		return false
	}

	if criteria.InStockOnly && !product.Availability {
		return false
	}

	if criteria.PriceMin != nil && product.Price < *criteria.PriceMin {
		return false
	}

	if criteria.PriceMax != nil && product.Price > *criteria.PriceMax {
		return false
	}

	return true
}

func matchesSearch(product entity.Product, search string) bool {
	query := strings.ToLower(search)

	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query) ||
		strings.Contains(strings.ToLower(product.Category), query)
}

// sortProducts applies a single stable sort in place. An empty key is the
// identity; "newest" falls back to id descending since the catalog carries
// no creation timestamp.
func sortProducts(products []entity.Product, sortKey string) {
	var less func(a, b entity.Product) bool

	switch sortKey {
	case usecase.SortNameAsc:
		less = func(a, b entity.Product) bool { return a.Name < b.Name }
	case usecase.SortNameDesc:
		less = func(a, b entity.Product) bool { return a.Name > b.Name }
	case usecase.SortPriceAsc:
		less = func(a, b entity.Product) bool { return a.Price < b.Price }
	case usecase.SortPriceDesc:
		less = func(a, b entity.Product) bool { return a.Price > b.Price }
	case usecase.SortPopularityDesc:
		less = func(a, b entity.Product) bool { return a.Popularity > b.Popularity }
	case usecase.SortNewest:
		less = func(a, b entity.Product) bool { return a.ID > b.ID }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}
