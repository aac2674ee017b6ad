package matching

import (
	"math"

	"matching-engine/internal/models"
	"matching-engine/internal/survey"
)

// ComputeCompatibilityScore computes the full score breakdown between two
// answer sets under the given weights.
//
// Per question both parties answered, a similarity in [0,1] is computed by
// variant, multiplied by the question weight, and accumulated into the
// question's category bucket. Buckets are normalized by their accumulated
// weight, scaled to the category budget, and rounded to 2 decimals; the total
// is the rounded sum of the rounded sub-scores. The rounding order is part of
// the contract: persisted breakdowns must reproduce bit-for-bit.
//
// Every per-variant similarity is symmetric, so the whole function is
// symmetric in its arguments. Keep it that way.
func ComputeCompatibilityScore(w Weights, answersA, answersB survey.AnswerSet) models.ScoreBreakdown {
	type bucket struct {
		total     float64
		weightSum float64
	}
	buckets := map[survey.Category]*bucket{}
	for _, c := range survey.Categories {
		buckets[c] = &bucket{}
	}

	for _, question := range survey.Questions {
		valA, okA := answersA[question.ID]
		valB, okB := answersB[question.ID]
		if !okA || !okB {
			continue
		}

		similarity, ok := questionSimilarity(question.Kind, valA, valB)
		if !ok {
			// answer shape does not match the declared kind; treat as unanswered
			continue
		}

		weight := w.QuestionWeight(question.ID)
		b := buckets[question.Category]
		b.total += similarity * weight
		b.weightSum += weight
	}

	scaled := func(c survey.Category) float64 {
		b := buckets[c]
		if b.weightSum == 0 {
			// no common answered questions in this category: contributes 0
			return 0
		}
		normalized := b.total / b.weightSum
		return round2(normalized * w.CategoryBudget(c))
	}

	breakdown := models.ScoreBreakdown{
		SurveySimilarity: scaled(survey.CategorySurveySimilarity),
		Lifestyle:        scaled(survey.CategoryLifestyle),
		ValueAlignment:   scaled(survey.CategoryValueAlignment),
		Personality:      scaled(survey.CategoryPersonality),
	}
	breakdown.Total = round2(breakdown.SurveySimilarity + breakdown.Lifestyle +
		breakdown.ValueAlignment + breakdown.Personality)

	return breakdown
}

// questionSimilarity dispatches on the question variant. It reports !ok when
// either answer's type does not match the variant.
func questionSimilarity(kind survey.Kind, a, b survey.Answer) (float64, bool) {
	switch k := kind.(type) {
	case survey.Slider:
		na, okA := a.(survey.Number)
		nb, okB := b.(survey.Number)
		if !okA || !okB {
			return 0, false
		}
		return sliderSimilarity(float64(na), float64(nb), k.Min, k.Max), true

	case survey.Select:
		ca, okA := a.(survey.Choice)
		cb, okB := b.(survey.Choice)
		if !okA || !okB {
			return 0, false
		}
		if ca == cb {
			return 1.0, true
		}
		return 0.0, true

	case survey.Multiselect:
		sa, okA := a.(survey.Choices)
		sb, okB := b.(survey.Choices)
		if !okA || !okB {
			return 0, false
		}
		return jaccardSimilarity(sa, sb), true
	}
	return 0, false
}

// sliderSimilarity maps two slider values to [0,1]: 1.0 identical, 0.0 at
// opposite ends. A degenerate range scores 1.0.
func sliderSimilarity(a, b, min, max float64) float64 {
	r := max - min
	if r == 0 {
		return 1.0
	}
	return 1 - math.Abs(a-b)/r
}

// jaccardSimilarity is |A∩B| / |A∪B|. Two empty selections score 0.0, not
// 1.0: no preference expressed is treated as no overlap.
func jaccardSimilarity(a, b []string) float64 {
	union := map[string]bool{}
	setA := map[string]bool{}
	for _, v := range a {
		setA[v] = true
		union[v] = true
	}
	intersection := 0
	seenB := map[string]bool{}
	for _, v := range b {
		if seenB[v] {
			continue
		}
		seenB[v] = true
		union[v] = true
		if setA[v] {
			intersection++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
