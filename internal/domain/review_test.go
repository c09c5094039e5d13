package domain_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

func TestReviewString(t *testing.T) {
	review := domain.NewReview("Tech Expert", 5, "Blazing fast")
	if got := review.String(); got != "Tech Expert rated 5/5: Blazing fast" {
		t.Fatalf("String() = %q", got)
	}
}

func TestReviewAIAnalysis(t *testing.T) {
	gen := &fakeGenerator{response: "positive"}
	review := domain.NewReview("Tech Expert", 4, "Good value")

	if got := review.AIAnalysis(gen); got != "positive" {
		t.Fatalf("AIAnalysis = %q", got)
	}
	prompt := gen.prompts[0]
	for _, part := range []string{"Tech Expert", "4/5", "Good value", "three bullet-point takeaways", "one suggestion"} {
		if !strings.Contains(prompt, part) {
			t.Fatalf("prompt missing %q:\n%s", part, prompt)
		}
	}
}

func TestIsStockViolation(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{domain.ErrInsufficientStock, true},
		{domain.ErrCapacityExceeded, true},
		{domain.ErrWarehouseFull, true},
		{fmt.Errorf("ctx: %w", domain.ErrInsufficientStock), true},
		{domain.ErrProductNotFound, false},
		{domain.ErrPermissionDenied, false},
		{errors.New("other"), false},
		{nil, false},
	}

	for _, tc := range cases {
		if got := domain.IsStockViolation(tc.err); got != tc.want {
			t.Fatalf("IsStockViolation(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
