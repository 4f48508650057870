package model

// Review is a customer review as served to the storefront carousel.
type Review struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"` // 1-5
	Date    string `json:"date"`
}

// Placeholder is served when the review source is unavailable, so the
// carousel always has something to show.
func Placeholder() Review {
	return Review{
		Name:    "Guest",
		Comment: "Great shop!",
		Rating:  5,
		Date:    "2025-01-01",
	}
}
