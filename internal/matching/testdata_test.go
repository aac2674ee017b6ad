package matching

import (
	"strings"
	"time"

	"matching-engine/internal/models"
	"matching-engine/internal/survey"
)

// fullAnswers builds an answer set covering every declared question with
// deterministic values: mid-range sliders, first option selects, first two
// options for multiselects.
func fullAnswers() survey.AnswerSet {
	answers := survey.AnswerSet{}
	for _, q := range survey.Questions {
		switch k := q.Kind.(type) {
		case survey.Slider:
			answers[q.ID] = survey.Number((k.Min + k.Max) / 2)
		case survey.Select:
			answers[q.ID] = survey.Choice(k.Options[0])
		case survey.Multiselect:
			answers[q.ID] = survey.Choices(k.Options[:2])
		}
	}
	return answers
}

// answersWithPrefixes keeps only answers whose question id starts with one of
// the given prefixes.
func answersWithPrefixes(full survey.AnswerSet, prefixes ...string) survey.AnswerSet {
	out := survey.AnswerSet{}
	for id, answer := range full {
		for _, p := range prefixes {
			if strings.HasPrefix(id, p) {
				out[id] = answer
				break
			}
		}
	}
	return out
}

func testProfile(userID string, gender models.Gender) *models.Profile {
	return &models.Profile{
		UserID:            userID,
		Nickname:          "user-" + userID,
		Gender:            gender,
		DateOfBirth:       time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		JobCategory:       "IT",
		Religion:          models.ReligionNone,
		Drinking:          models.FrequencySometimes,
		Smoking:           models.FrequencyNever,
		ResidenceLocation: "서울|강남구",
		StopMatching:      false,
		Dealbreakers:      []string{},
	}
}
