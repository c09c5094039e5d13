package domain

import "fmt"

// Review — отзыв о продукте: имя автора, оценка и свободный комментарий.
// Оценка ожидается в диапазоне 1–5, но не валидируется.
type Review struct {
	Reviewer string
	Rating   int
	Comment  string
}

// NewReview создаёт отзыв.
func NewReview(reviewer string, rating int, comment string) *Review {
	return &Review{Reviewer: reviewer, Rating: rating, Comment: comment}
}

// String возвращает отзыв одной строкой.
func (r *Review) String() string {
	return fmt.Sprintf("%s rated %d/5: %s", r.Reviewer, r.Rating, r.Comment)
}

// AIAnalysis запрашивает у генератора разбор отзыва фиксированной формы:
// общий сантимент, ровно три тезиса и ровно одно предложение по улучшению.
func (r *Review) AIAnalysis(gen TextGenerator) string {
	prompt := fmt.Sprintf(
		"Analyze this product review:\n"+
			"- Reviewer: %s\n"+
			"- Rating: %d/5\n"+
			"- Comment: %s\n\n"+
			"Please provide:\n"+
			"1. Short overall sentiment (positive/negative/neutral).\n"+
			"2. Only three bullet-point takeaways.\n"+
			"3. Only one suggestion to improve the product based on this feedback.\n",
		r.Reviewer, r.Rating, r.Comment,
	)
	return gen.Generate(prompt, 256)
}
