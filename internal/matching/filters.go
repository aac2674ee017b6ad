package matching

import (
	"matching-engine/internal/models"
)

// PassesHardFilters reports whether a candidate survives every elimination
// rule for a given requester. Hard filters remove a candidate entirely,
// before any scoring happens.
//
// Rules short-circuit cheapest-first; the order does not change the result.
func PassesHardFilters(requester, candidate *models.Profile) bool {
	// both users must be actively matching
	if requester.StopMatching || candidate.StopMatching {
		return false
	}

	// never match a user with themselves
	if requester.UserID == candidate.UserID {
		return false
	}

	// opposite-gender matching is the default policy; there is currently no
	// configuration path for other preference models
	if requester.Gender == candidate.Gender {
		return false
	}

	return passesDealbreakers(requester, candidate)
}

// passesDealbreakers checks the requester's declared dealbreaker conditions
// against candidate attributes. Condition names outside the known set are
// no-ops: they are preference tags, not elimination rules.
func passesDealbreakers(requester, candidate *models.Profile) bool {
	for _, condition := range requester.Dealbreakers {
		switch condition {
		case models.DealbreakerSmoker:
			if candidate.Smoking == models.FrequencyOften || candidate.Smoking == models.FrequencySometimes {
				return false
			}

		case models.DealbreakerHeavyDrinker:
			if candidate.Drinking == models.FrequencyOften {
				return false
			}

		case models.DealbreakerReligionMismatch:
			// no religion on either side means no conflict
			if requester.Religion != models.ReligionNone &&
				candidate.Religion != models.ReligionNone &&
				requester.Religion != candidate.Religion {
				return false
			}

		case models.DealbreakerLongDistance:
			if requester.Province() != candidate.Province() {
				return false
			}
		}
	}
	return true
}
