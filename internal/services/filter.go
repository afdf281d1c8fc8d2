// internal/services/filter.go
package services

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fakestore/storefront-backend/internal/models"
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ErrUnsupportedFilter is returned for the in-stock-only criterion: the
// upstream catalog feed carries no stock field, so the filter cannot be
// honored and is rejected rather than silently ignored.
var ErrUnsupportedFilter = errors.New("in-stock filter is not supported by the catalog source")

// Criteria is the combined filter/sort state driving the product list.
type Criteria struct {
	Search      string
	Category    string
	MaxPrice    *float64
	MinRating   float64
	Sort        SortKey
	InStockOnly bool
}

// FilterProducts returns the ordered subset of products satisfying criteria.
// Filters apply in a fixed order: search, category, price ceiling, minimum
// rating. Sorting runs after filtering; without a sort key the catalog order
// is preserved. The input slice is never mutated.
func FilterProducts(products []models.Product, c Criteria) ([]models.Product, error) {
	if c.InStockOnly {
		return nil, ErrUnsupportedFilter
	}

	filtered := make([]models.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(c.Search))

	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		if c.MinRating > 0 && p.RatingRate() < c.MinRating {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, c.Sort)
	return filtered, nil
}

func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc, SortNameDesc:
		// Locale-aware compare, matching the UI's localeCompare ordering.
		coll := collate.New(language.Und)
		sort.SliceStable(products, func(i, j int) bool {
			cmp := coll.CompareString(products[i].Title, products[j].Title)
			if key == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
}
