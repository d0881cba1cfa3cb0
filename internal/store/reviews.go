package store

import (
	"sync"
	"time"

	"github.com/safar/go-retail-store/internal/models"
)

// Reviews stores product reviews keyed by product id.
type Reviews struct {
	mu        sync.RWMutex
	byProduct map[int64][]*models.Review
}

func NewReviews() *Reviews {
	return &Reviews{byProduct: make(map[int64][]*models.Review)}
}

// AddReview appends a review to the product's list. Ratings outside 1..5
// are rejected.
func (s *Reviews) AddReview(review *models.Review) error {
	if review == nil || review.Product == nil {
		return ErrProductNotFound
	}
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	s.byProduct[review.Product.ID] = append(s.byProduct[review.Product.ID], review)
	return nil
}

// GetReviewsForProduct returns the reviews for a product, oldest first.
// A product with no reviews gets an empty slice, never an error.
func (s *Reviews) GetReviewsForProduct(productID int64) []*models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := s.byProduct[productID]
	out := make([]*models.Review, len(reviews))
	copy(out, reviews)
	return out
}
