package matching

import (
	"strconv"
	"strings"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

// SearchCriteria is a flat field filter. Empty strings and nil numbers are
// ignored.
type SearchCriteria struct {
	Gender        string `form:"gender" json:"gender"`
	MinAge        *int   `form:"min_age" json:"min_age" binding:"omitempty,min=18,max=100"`
	MaxAge        *int   `form:"max_age" json:"max_age" binding:"omitempty,min=18,max=100"`
	MaritalStatus string `form:"marital_status" json:"marital_status"`
	Religion      string `form:"religion" json:"religion"`
	MotherTongue  string `form:"mother_tongue" json:"mother_tongue"`
	Caste         string `form:"caste" json:"caste"`
	Location      string `form:"location" json:"location"`
	Education     string `form:"education" json:"education"`
	Occupation    string `form:"occupation" json:"occupation"`
	MinIncome     *int   `form:"min_income" json:"min_income" binding:"omitempty,min=0"`
}

// Search keeps the profiles that pass every set criterion, in pool order.
// Nothing is scored and no threshold applies.
func Search(pool []*domain.CompleteProfile, c SearchCriteria, now time.Time) []*domain.CompleteProfile {
	out := make([]*domain.CompleteProfile, 0, len(pool))
	for _, cp := range pool {
		if cp != nil && c.matches(cp, now) {
			out = append(out, cp)
		}
	}
	return out
}

func (c SearchCriteria) matches(cp *domain.CompleteProfile, now time.Time) bool {
	p := cp.Profile
	if p == nil {
		return false
	}

	if c.Gender != "" && string(p.Gender) != c.Gender {
		return false
	}
	if c.MinAge != nil || c.MaxAge != nil {
		age := p.AgeAt(now)
		if c.MinAge != nil && age < *c.MinAge {
			return false
		}
		if c.MaxAge != nil && age > *c.MaxAge {
			return false
		}
	}
	if c.MaritalStatus != "" && p.MaritalStatus != c.MaritalStatus {
		return false
	}
	if c.Religion != "" && p.Religion != c.Religion {
		return false
	}
	if c.MotherTongue != "" && p.MotherTongue != c.MotherTongue {
		return false
	}
	if c.Caste != "" && (p.Caste == nil || *p.Caste != c.Caste) {
		return false
	}
	if c.Location != "" && !containsAny(c.Location, p.Location, p.State, p.City) {
		return false
	}

	// Sub-record filters only reject candidates that have the record.
	if c.Education != "" && cp.Education != nil && cp.Education.HighestEducation != c.Education {
		return false
	}
	if c.Occupation != "" && cp.Career != nil && cp.Career.Occupation != c.Occupation {
		return false
	}
	if c.MinIncome != nil && cp.Career != nil && cp.Career.AnnualIncome != nil {
		if income, ok := leadingInt(*cp.Career.AnnualIncome); ok && income < *c.MinIncome {
			return false
		}
	}
	return true
}

func containsAny(sub string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(f, sub) {
			return true
		}
	}
	return false
}

// leadingInt parses the integer prefix of an income label such as
// "5-10 Lakhs".
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
