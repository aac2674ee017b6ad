package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matching-engine/internal/survey"
)

func TestDefaultWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
}

func TestWeightsValidateRejectsBadBudgets(t *testing.T) {
	w := DefaultWeights()
	w.Category[survey.CategoryPersonality] = 20 // sum becomes 110
	assert.Error(t, w.Validate())

	w = DefaultWeights()
	delete(w.Category, survey.CategoryLifestyle)
	assert.Error(t, w.Validate())
}

func TestIdenticalFullAnswersScoreHundred(t *testing.T) {
	answers := fullAnswers()
	breakdown := ComputeCompatibilityScore(DefaultWeights(), answers, answers)

	assert.Equal(t, 45.0, breakdown.SurveySimilarity)
	assert.Equal(t, 25.0, breakdown.Lifestyle)
	assert.Equal(t, 20.0, breakdown.ValueAlignment)
	assert.Equal(t, 10.0, breakdown.Personality)
	assert.Equal(t, 100.0, breakdown.Total)
}

func TestScoreIsSymmetric(t *testing.T) {
	a := fullAnswers()
	b := fullAnswers()
	// perturb b across all three variants
	b["dv_importance_of_love"] = survey.Number(9)
	b["ls_weekend_preference"] = survey.Choice("야외 활동")
	b["pd_humor_style"] = survey.Choices{"블랙코미디"}

	ab := ComputeCompatibilityScore(DefaultWeights(), a, b)
	ba := ComputeCompatibilityScore(DefaultWeights(), b, a)
	assert.Equal(t, ab, ba)
}

func TestSubScoresStayWithinBudgets(t *testing.T) {
	w := DefaultWeights()
	a := fullAnswers()
	b := fullAnswers()
	b["dv_jealousy_level"] = survey.Number(1)
	b["fp_marriage_intent"] = survey.Choice("결혼 생각 없음")
	b["pd_humor_style"] = survey.Choices{}

	breakdown := ComputeCompatibilityScore(w, a, b)

	assert.GreaterOrEqual(t, breakdown.SurveySimilarity, 0.0)
	assert.LessOrEqual(t, breakdown.SurveySimilarity, 45.0)
	assert.GreaterOrEqual(t, breakdown.Lifestyle, 0.0)
	assert.LessOrEqual(t, breakdown.Lifestyle, 25.0)
	assert.GreaterOrEqual(t, breakdown.ValueAlignment, 0.0)
	assert.LessOrEqual(t, breakdown.ValueAlignment, 20.0)
	assert.GreaterOrEqual(t, breakdown.Personality, 0.0)
	assert.LessOrEqual(t, breakdown.Personality, 10.0)
	assert.GreaterOrEqual(t, breakdown.Total, 0.0)
	assert.LessOrEqual(t, breakdown.Total, 100.0)
}

func TestUnansweredCategoryContributesZero(t *testing.T) {
	// both parties answered everything except personality questions
	a := answersWithPrefixes(fullAnswers(), "dv_", "cm_", "ls_", "fp_")
	b := answersWithPrefixes(fullAnswers(), "dv_", "cm_", "ls_", "fp_")

	breakdown := ComputeCompatibilityScore(DefaultWeights(), a, b)

	assert.Equal(t, 0.0, breakdown.Personality)
	assert.Equal(t, 90.0, breakdown.Total)
}

func TestOnePartyMissingAllAnswersInCategory(t *testing.T) {
	a := fullAnswers()
	b := answersWithPrefixes(fullAnswers(), "dv_", "cm_", "ls_", "fp_")

	breakdown := ComputeCompatibilityScore(DefaultWeights(), a, b)
	assert.Equal(t, 0.0, breakdown.Personality)
	assert.Equal(t, 90.0, breakdown.Total)
}

func TestMistypedAnswerIsSkipped(t *testing.T) {
	a := fullAnswers()
	b := fullAnswers()
	// slider question answered with a string: treated as unanswered, so the
	// rest of the category still normalizes to full marks
	b["pd_introvert_extrovert"] = survey.Choice("외향적")

	breakdown := ComputeCompatibilityScore(DefaultWeights(), a, b)
	assert.Equal(t, 10.0, breakdown.Personality)
	assert.Equal(t, 100.0, breakdown.Total)
}

func TestNoCommonAnswersScoresZero(t *testing.T) {
	breakdown := ComputeCompatibilityScore(DefaultWeights(), survey.AnswerSet{}, fullAnswers())
	assert.Equal(t, 0.0, breakdown.Total)
}

func TestAlternateWeightSchemeIsInjectable(t *testing.T) {
	flat := Weights{
		Category: map[survey.Category]float64{
			survey.CategorySurveySimilarity: 25,
			survey.CategoryLifestyle:        25,
			survey.CategoryValueAlignment:   25,
			survey.CategoryPersonality:      25,
		},
	}
	require.NoError(t, flat.Validate())

	answers := fullAnswers()
	breakdown := ComputeCompatibilityScore(flat, answers, answers)
	assert.Equal(t, 25.0, breakdown.SurveySimilarity)
	assert.Equal(t, 25.0, breakdown.Personality)
	assert.Equal(t, 100.0, breakdown.Total)
}

func TestSliderSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, sliderSimilarity(5, 5, 1, 10))
	assert.Equal(t, 0.0, sliderSimilarity(1, 10, 1, 10))
	assert.InDelta(t, 1-4.0/9.0, sliderSimilarity(3, 7, 1, 10), 1e-9)
	// degenerate range
	assert.Equal(t, 1.0, sliderSimilarity(4, 4, 4, 4))
}

func TestJaccardSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, jaccardSimilarity([]string{"a", "b"}, []string{"b", "a"}))
	assert.Equal(t, 0.0, jaccardSimilarity([]string{"a"}, []string{"b"}))
	assert.InDelta(t, 1.0/3.0, jaccardSimilarity([]string{"a", "b"}, []string{"b", "c"}), 1e-9)
	// both empty is no-overlap, not full match
	assert.Equal(t, 0.0, jaccardSimilarity(nil, nil))
	assert.Equal(t, 0.0, jaccardSimilarity([]string{}, []string{}))
	// duplicates collapse to set semantics
	assert.Equal(t, 1.0, jaccardSimilarity([]string{"a", "a"}, []string{"a"}))
}
