package matching

import (
	"strings"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

type Dimension string

const (
	DimensionAge           Dimension = "age"
	DimensionHeight        Dimension = "height"
	DimensionMaritalStatus Dimension = "marital_status"
	DimensionReligion      Dimension = "religion"
	DimensionCaste         Dimension = "caste"
	DimensionMotherTongue  Dimension = "mother_tongue"
	DimensionLocation      Dimension = "location"
	DimensionEducation     Dimension = "education"
	DimensionOccupation    Dimension = "occupation"
	DimensionIncome        Dimension = "income"
)

// Weights per preference dimension. Age, marital status and religion sit in
// the heaviest tier.
const (
	weightAge           = 10
	weightHeight        = 5
	weightMaritalStatus = 10
	weightReligion      = 10
	weightCaste         = 10
	weightMotherTongue  = 8
	weightLocation      = 8
	weightEducation     = 7
	weightOccupation    = 7
	weightIncome        = 5
)

// Horoscope blend, in tenths.
const (
	preferenceShare = 7
	horoscopeShare  = 3
)

// DimensionResult records whether a dimension took part in scoring and,
// if it did, whether the candidate satisfied it.
type DimensionResult struct {
	Dimension  Dimension `json:"dimension"`
	Weight     int       `json:"weight"`
	Considered bool      `json:"considered"`
	Satisfied  bool      `json:"satisfied"`
}

func skipped(d Dimension, w int) DimensionResult {
	return DimensionResult{Dimension: d, Weight: w}
}

func scored(d Dimension, w int, ok bool) DimensionResult {
	return DimensionResult{Dimension: d, Weight: w, Considered: true, Satisfied: ok}
}

type MatchBreakdown struct {
	Dimensions      []DimensionResult `json:"dimensions"`
	Points          int               `json:"points"`
	TotalPoints     int               `json:"total_points"`
	PreferenceScore int               `json:"preference_score"`
	Horoscope       *HoroscopeResult  `json:"horoscope,omitempty"`
	Score           int               `json:"score"`
}

// Matcher scores a candidate against a requester's stated preferences.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	now func() time.Time
}

type MatcherOption func(*Matcher)

// WithClock overrides the clock used for age computation.
func WithClock(now func() time.Time) MatcherOption {
	return func(m *Matcher) {
		m.now = now
	}
}

func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMatcher = NewMatcher()

// MatchPercentage scores candidate for requester with the wall clock.
func MatchPercentage(requester, candidate *domain.CompleteProfile) int {
	return defaultMatcher.MatchPercentage(requester, candidate)
}

func (m *Matcher) MatchPercentage(requester, candidate *domain.CompleteProfile) int {
	return m.Breakdown(requester, candidate).Score
}

// Breakdown evaluates every dimension. Missing preferences or a missing
// candidate profile produce a zero breakdown.
func (m *Matcher) Breakdown(requester, candidate *domain.CompleteProfile) MatchBreakdown {
	var b MatchBreakdown
	if requester == nil || requester.Preferences == nil || candidate == nil || candidate.Profile == nil {
		return b
	}

	pref := requester.Preferences
	p := candidate.Profile

	b.Dimensions = []DimensionResult{
		ageDimension(pref, p, m.now()),
		heightDimension(pref, p),
		maritalStatusDimension(pref, p),
		religionDimension(pref, p),
		casteDimension(pref, p),
		motherTongueDimension(pref, p),
		locationDimension(pref, p),
		educationDimension(pref, candidate.Education),
		occupationDimension(pref, candidate.Career),
		incomeDimension(pref, candidate.Career),
	}

	for _, d := range b.Dimensions {
		if !d.Considered {
			continue
		}
		b.TotalPoints += d.Weight
		if d.Satisfied {
			b.Points += d.Weight
		}
	}
	b.PreferenceScore = percent(b.Points, b.TotalPoints)
	b.Score = b.PreferenceScore

	if requester.Horoscope != nil && candidate.Horoscope != nil {
		h := EvaluateHoroscopes(requester.Horoscope, candidate.Horoscope)
		b.Horoscope = &h
		b.Score = (b.PreferenceScore*preferenceShare + h.Score*horoscopeShare + 5) / 10
	}
	return b
}

func ageDimension(pref *domain.Preference, p *domain.Profile, now time.Time) DimensionResult {
	if !pref.HasAgeRange() {
		return skipped(DimensionAge, weightAge)
	}
	age := p.AgeAt(now)
	return scored(DimensionAge, weightAge, age >= *pref.MinAge && age <= *pref.MaxAge)
}

func heightDimension(pref *domain.Preference, p *domain.Profile) DimensionResult {
	if !pref.HasHeightRange() || p.Height == nil {
		return skipped(DimensionHeight, weightHeight)
	}
	h := *p.Height
	return scored(DimensionHeight, weightHeight, h >= *pref.MinHeight && h <= *pref.MaxHeight)
}

func maritalStatusDimension(pref *domain.Preference, p *domain.Profile) DimensionResult {
	return membership(DimensionMaritalStatus, weightMaritalStatus, pref.MaritalStatus, &p.MaritalStatus)
}

func religionDimension(pref *domain.Preference, p *domain.Profile) DimensionResult {
	return membership(DimensionReligion, weightReligion, pref.Religion, &p.Religion)
}

func casteDimension(pref *domain.Preference, p *domain.Profile) DimensionResult {
	if p.Caste == nil || *p.Caste == "" {
		return skipped(DimensionCaste, weightCaste)
	}
	return membership(DimensionCaste, weightCaste, pref.Caste, p.Caste)
}

func motherTongueDimension(pref *domain.Preference, p *domain.Profile) DimensionResult {
	return membership(DimensionMotherTongue, weightMotherTongue, pref.MotherTongue, &p.MotherTongue)
}

func locationDimension(pref *domain.Preference, p *domain.Profile) DimensionResult {
	if len(pref.Location) == 0 {
		return skipped(DimensionLocation, weightLocation)
	}
	for _, want := range pref.Location {
		if locationMatches(want, p.Location, p.State, p.City) {
			return scored(DimensionLocation, weightLocation, true)
		}
	}
	return scored(DimensionLocation, weightLocation, false)
}

func educationDimension(pref *domain.Preference, e *domain.Education) DimensionResult {
	if e == nil {
		return skipped(DimensionEducation, weightEducation)
	}
	return membership(DimensionEducation, weightEducation, pref.Education, &e.HighestEducation)
}

func occupationDimension(pref *domain.Preference, c *domain.Career) DimensionResult {
	if c == nil {
		return skipped(DimensionOccupation, weightOccupation)
	}
	return membership(DimensionOccupation, weightOccupation, pref.Occupation, &c.Occupation)
}

func incomeDimension(pref *domain.Preference, c *domain.Career) DimensionResult {
	if c == nil {
		return skipped(DimensionIncome, weightIncome)
	}
	return membership(DimensionIncome, weightIncome, pref.Income, c.AnnualIncome)
}

// membership scores set-valued preferences. An empty set or a nil
// candidate value skips the dimension.
func membership(d Dimension, w int, set []string, value *string) DimensionResult {
	if len(set) == 0 || value == nil {
		return skipped(d, w)
	}
	for _, s := range set {
		if s == *value {
			return scored(d, w, true)
		}
	}
	return scored(d, w, false)
}

// locationMatches is true when want equals, or is a case-insensitive
// substring of, any of the candidate's location fields.
func locationMatches(want string, fields ...string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return false
	}
	lw := strings.ToLower(want)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if f == want || strings.Contains(strings.ToLower(f), lw) {
			return true
		}
	}
	return false
}
