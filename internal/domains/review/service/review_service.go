package service

import (
	"encoding/json"
	"fmt"
	"os"

	"smartshop-backend/internal/domains/review/model"
	"smartshop-backend/pkg/logger"
)

// ReviewService serves the session's review list, loaded once at
// startup. Retrieval failure degrades to a single placeholder record,
// never to an error.
type ReviewService struct {
	reviews []model.Review
}

// NewReviewService loads reviews from the given JSON file. Any failure
// (missing file, bad JSON, empty list) falls back to the placeholder.
func NewReviewService(path string) *ReviewService {
	reviews, err := loadFromFile(path)
	if err != nil {
		logger.Warn("Reviews load failed, using placeholder", err)
		reviews = []model.Review{model.Placeholder()}
	}
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) All() []model.Review {
	out := make([]model.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func loadFromFile(path string) ([]model.Review, error) {
	if path == "" {
		return nil, fmt.Errorf("no reviews path configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reviews file: %w", err)
	}

	var reviews []model.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	if len(reviews) == 0 {
		return nil, fmt.Errorf("reviews file is empty")
	}

	return reviews, nil
}
