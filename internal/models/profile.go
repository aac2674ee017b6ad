package models

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Religion string

const (
	ReligionNone         Religion = "NONE"
	ReligionChristianity Religion = "CHRISTIANITY"
	ReligionCatholicism  Religion = "CATHOLICISM"
	ReligionBuddhism     Religion = "BUDDHISM"
	ReligionOther        Religion = "OTHER"
)

// Frequency is shared by the drinking and smoking profile fields.
type Frequency string

const (
	FrequencyNever     Frequency = "NEVER"
	FrequencyQuit      Frequency = "QUIT" // smoking only
	FrequencyRarely    Frequency = "RARELY"
	FrequencySometimes Frequency = "SOMETIMES"
	FrequencyOften     Frequency = "OFTEN"
)

// Dealbreaker condition names a user may declare. Names outside this set are
// accepted as declared but have no filtering effect.
const (
	DealbreakerSmoker           = "smoker"
	DealbreakerHeavyDrinker     = "heavy-drinker"
	DealbreakerReligionMismatch = "religion-mismatch"
	DealbreakerLongDistance     = "long-distance"
)

// Profile holds the attributes of a person the matching engine reads. It is
// owned by the profile service; the engine never mutates it.
type Profile struct {
	UserID            string    `json:"userId"`
	Nickname          string    `json:"nickname"`
	Gender            Gender    `json:"gender"`
	DateOfBirth       time.Time `json:"dateOfBirth"`
	JobCategory       string    `json:"jobCategory"`
	Religion          Religion  `json:"religion"`
	Drinking          Frequency `json:"drinking"`
	Smoking           Frequency `json:"smoking"`
	ResidenceLocation string    `json:"residenceLocation"` // "province|district"
	StopMatching      bool      `json:"stopMatching"`
	MinMatchScore     *float64  `json:"minMatchScore,omitempty"`
	Dealbreakers      []string  `json:"dealbreakers"`
}

// Province returns the top-level region of the residence location.
func (p *Profile) Province() string {
	province, _, _ := strings.Cut(p.ResidenceLocation, "|")
	return province
}

// Age derives the current age from the date of birth.
func (p *Profile) Age(now time.Time) int {
	age := now.Year() - p.DateOfBirth.Year()
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		age--
	}
	return age
}
