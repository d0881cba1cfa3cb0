package store

import (
	"errors"
	"testing"

	"github.com/safar/go-retail-store/internal/models"
)

func TestAddAndGetReviews(t *testing.T) {
	reviews := NewReviews()

	shirt := testProduct(1, "19.99", 10)
	alice := models.NewCustomer("Alice", "alice@example.com")

	review := &models.Review{Customer: alice, Product: shirt, Rating: 4, Comment: "fits well"}
	if err := reviews.AddReview(review); err != nil {
		t.Fatalf("Add review: %v", err)
	}
	if review.CreatedAt.IsZero() {
		t.Error("Review timestamp should be set")
	}

	got := reviews.GetReviewsForProduct(1)
	if len(got) != 1 || got[0] != review {
		t.Errorf("Expected stored review, got %v", got)
	}
}

func TestGetReviewsForProductEmpty(t *testing.T) {
	reviews := NewReviews()

	got := reviews.GetReviewsForProduct(42)
	if got == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("Expected no reviews, got %d", len(got))
	}
}

func TestAddReviewInvalidRating(t *testing.T) {
	reviews := NewReviews()
	shirt := testProduct(1, "19.99", 10)

	for _, rating := range []int{0, -1, 6} {
		review := &models.Review{Product: shirt, Rating: rating}
		if err := reviews.AddReview(review); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}

	if len(reviews.GetReviewsForProduct(1)) != 0 {
		t.Error("Rejected reviews must not be stored")
	}
}
