package domain

import "time"

// Preference describes the partner a user is looking for. Nil range bounds and
// empty sets leave that dimension out of scoring.
type Preference struct {
	ID                   int       `json:"id" db:"id"`
	UserID               int       `json:"user_id" db:"user_id"`
	MinAge               *int      `json:"min_age" db:"min_age"`
	MaxAge               *int      `json:"max_age" db:"max_age"`
	MinHeight            *int      `json:"min_height" db:"min_height"`
	MaxHeight            *int      `json:"max_height" db:"max_height"`
	MaritalStatus        []string  `json:"marital_status" db:"marital_status"`
	Religion             []string  `json:"religion" db:"religion"`
	Caste                []string  `json:"caste" db:"caste"`
	MotherTongue         []string  `json:"mother_tongue" db:"mother_tongue"`
	Location             []string  `json:"location" db:"location"`
	Education            []string  `json:"education" db:"education"`
	Occupation           []string  `json:"occupation" db:"occupation"`
	Income               []string  `json:"income" db:"income"`
	SpecificRequirements *string   `json:"specific_requirements" db:"specific_requirements"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Preference) HasAgeRange() bool {
	return p.MinAge != nil && p.MaxAge != nil
}

func (p *Preference) HasHeightRange() bool {
	return p.MinHeight != nil && p.MaxHeight != nil
}
