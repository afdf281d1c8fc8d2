// internal/models/product.go
package models

// Product is one record of the upstream catalog feed. Products are immutable
// once fetched and are never persisted locally.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

// Rating is the upstream average rating; absent for unrated products.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// RatingRate returns the average rating, treating a missing rating as 0.
func (p Product) RatingRate() float64 {
	if p.Rating == nil {
		return 0
	}
	return p.Rating.Rate
}
