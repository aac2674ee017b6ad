package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matching-engine/internal/models"
)

func TestHardFiltersRejectSelf(t *testing.T) {
	p := testProfile("u1", models.GenderMale)
	assert.False(t, PassesHardFilters(p, p))
}

func TestHardFiltersRejectStopMatching(t *testing.T) {
	requester := testProfile("u1", models.GenderMale)
	candidate := testProfile("u2", models.GenderFemale)

	requester.StopMatching = true
	assert.False(t, PassesHardFilters(requester, candidate))

	requester.StopMatching = false
	candidate.StopMatching = true
	assert.False(t, PassesHardFilters(requester, candidate))
}

func TestHardFiltersRejectSameGender(t *testing.T) {
	requester := testProfile("u1", models.GenderMale)
	candidate := testProfile("u2", models.GenderMale)
	assert.False(t, PassesHardFilters(requester, candidate))
}

func TestHardFiltersPassCompatiblePair(t *testing.T) {
	requester := testProfile("u1", models.GenderMale)
	candidate := testProfile("u2", models.GenderFemale)
	assert.True(t, PassesHardFilters(requester, candidate))
}

func TestSmokerDealbreaker(t *testing.T) {
	requester := testProfile("u1", models.GenderMale)
	requester.Dealbreakers = []string{models.DealbreakerSmoker}

	candidate := testProfile("u2", models.GenderFemale)
	candidate.Smoking = models.FrequencyOften
	assert.False(t, PassesHardFilters(requester, candidate))

	candidate.Smoking = models.FrequencySometimes
	assert.False(t, PassesHardFilters(requester, candidate))

	candidate.Smoking = models.FrequencyQuit
	assert.True(t, PassesHardFilters(requester, candidate))

	candidate.Smoking = models.FrequencyNever
	assert.True(t, PassesHardFilters(requester, candidate))
}

func TestHeavyDrinkerDealbreaker(t *testing.T) {
	requester := testProfile("u1", models.GenderFemale)
	requester.Dealbreakers = []string{models.DealbreakerHeavyDrinker}

	candidate := testProfile("u2", models.GenderMale)
	candidate.Drinking = models.FrequencyOften
	assert.False(t, PassesHardFilters(requester, candidate))

	candidate.Drinking = models.FrequencySometimes
	assert.True(t, PassesHardFilters(requester, candidate))
}

func TestReligionMismatchDealbreaker(t *testing.T) {
	requester := testProfile("u1", models.GenderMale)
	requester.Dealbreakers = []string{models.DealbreakerReligionMismatch}
	requester.Religion = models.ReligionCatholicism

	candidate := testProfile("u2", models.GenderFemale)
	candidate.Religion = models.ReligionBuddhism
	assert.False(t, PassesHardFilters(requester, candidate))

	// same religion is fine
	candidate.Religion = models.ReligionCatholicism
	assert.True(t, PassesHardFilters(requester, candidate))

	// either side without a religion never conflicts
	candidate.Religion = models.ReligionNone
	assert.True(t, PassesHardFilters(requester, candidate))

	requester.Religion = models.ReligionNone
	candidate.Religion = models.ReligionBuddhism
	assert.True(t, PassesHardFilters(requester, candidate))
}

func TestLongDistanceDealbreaker(t *testing.T) {
	requester := testProfile("u1", models.GenderMale)
	requester.Dealbreakers = []string{models.DealbreakerLongDistance}
	requester.ResidenceLocation = "서울|강남구"

	candidate := testProfile("u2", models.GenderFemale)
	candidate.ResidenceLocation = "부산|해운대구"
	assert.False(t, PassesHardFilters(requester, candidate))

	// same province, different district is close enough
	candidate.ResidenceLocation = "서울|마포구"
	assert.True(t, PassesHardFilters(requester, candidate))
}

func TestUnknownDealbreakerIsNoOp(t *testing.T) {
	requester := testProfile("u1", models.GenderMale)
	requester.Dealbreakers = []string{"유머감각", "does-not-exist"}

	candidate := testProfile("u2", models.GenderFemale)
	candidate.Smoking = models.FrequencyOften
	candidate.Drinking = models.FrequencyOften
	assert.True(t, PassesHardFilters(requester, candidate))
}

func TestDealbreakerAppliesRegardlessOfDirection(t *testing.T) {
	// only the requester's dealbreakers are evaluated
	requester := testProfile("u1", models.GenderMale)
	candidate := testProfile("u2", models.GenderFemale)
	candidate.Dealbreakers = []string{models.DealbreakerSmoker}
	requester.Smoking = models.FrequencyOften

	assert.True(t, PassesHardFilters(requester, candidate))
	assert.False(t, PassesHardFilters(candidate, requester))
}
