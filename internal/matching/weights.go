// Package matching implements the compatibility pipeline: hard filters,
// weighted scoring, admission rules, and the orchestrating engine.
package matching

import (
	"fmt"

	"matching-engine/internal/survey"
)

// Weights is the scoring configuration: a point budget per category (budgets
// must sum to 100) and an importance multiplier per question. The multiplier
// only shifts a question's contribution within its own category; it never
// moves points between categories.
//
// Weights is constructed explicitly and injected so tests can substitute
// alternate schemes. There are no hidden globals.
type Weights struct {
	Category map[survey.Category]float64
	Question map[string]float64
}

// DefaultWeights returns the production scheme.
//
// Survey similarity carries the heaviest budget because the questionnaire is
// the most structured signal; lifestyle covers day-to-day fit; value
// alignment covers long-term plans; personality is a bonus signal.
func DefaultWeights() Weights {
	return Weights{
		Category: map[survey.Category]float64{
			survey.CategorySurveySimilarity: 45,
			survey.CategoryLifestyle:        25,
			survey.CategoryValueAlignment:   20,
			survey.CategoryPersonality:      10,
		},
		Question: map[string]float64{
			"dv_importance_of_love":  1.2,
			"dv_conflict_resolution": 1.3, // very predictive
			"fp_marriage_intent":     1.5, // major deal-maker/breaker
			"fp_children_preference": 1.4,
			"cm_contact_frequency":   1.1,
			"ls_cleanliness":         1.1,
			"pd_introvert_extrovert": 1.2,
		},
	}
}

// Validate checks that budgets cover all four categories, sum to 100, and
// that every declared question maps to a budgeted category.
func (w Weights) Validate() error {
	var sum float64
	for _, c := range survey.Categories {
		budget, ok := w.Category[c]
		if !ok {
			return fmt.Errorf("category %q has no point budget", c)
		}
		if budget < 0 {
			return fmt.Errorf("category %q has a negative budget", c)
		}
		sum += budget
	}
	if sum != 100 {
		return fmt.Errorf("category budgets sum to %v, want 100", sum)
	}
	for _, q := range survey.Questions {
		if _, ok := w.Category[q.Category]; !ok {
			return fmt.Errorf("question %q maps to unbudgeted category %q", q.ID, q.Category)
		}
	}
	return nil
}

// QuestionWeight returns the multiplier for a question, defaulting to 1.0.
func (w Weights) QuestionWeight(id string) float64 {
	if v, ok := w.Question[id]; ok {
		return v
	}
	return 1.0
}

// CategoryBudget returns the point budget for a category, 0 if unbudgeted.
func (w Weights) CategoryBudget(c survey.Category) float64 {
	return w.Category[c]
}
