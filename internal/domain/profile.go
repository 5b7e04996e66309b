package domain

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender accepts any casing of "male"/"female".
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	}
	return "", false
}

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

type Profile struct {
	ID             int       `json:"id" db:"id"`
	UserID         int       `json:"user_id" db:"user_id"`
	FullName       string    `json:"full_name" db:"full_name"`
	Gender         Gender    `json:"gender" db:"gender"`
	DateOfBirth    time.Time `json:"date_of_birth" db:"date_of_birth"`
	Height         *int      `json:"height" db:"height"`
	MaritalStatus  string    `json:"marital_status" db:"marital_status"`
	Religion       string    `json:"religion" db:"religion"`
	MotherTongue   string    `json:"mother_tongue" db:"mother_tongue"`
	Caste          *string   `json:"caste" db:"caste"`
	Subcaste       *string   `json:"subcaste" db:"subcaste"`
	Gotram         *string   `json:"gotram" db:"gotram"`
	Location       string    `json:"location" db:"location"`
	State          string    `json:"state" db:"state"`
	City           string    `json:"city" db:"city"`
	Country        string    `json:"country" db:"country"`
	About          *string   `json:"about" db:"about"`
	Hobbies        []string  `json:"hobbies" db:"hobbies"`
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// AgeAt returns the calendar age on the given day.
func (p *Profile) AgeAt(now time.Time) int {
	return CalendarAge(p.DateOfBirth, now)
}

// CalendarAge counts whole years, dropping one when the birthday has not
// yet come around in now's year.
func CalendarAge(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

type Education struct {
	ID               int     `json:"id" db:"id"`
	UserID           int     `json:"user_id" db:"user_id"`
	HighestEducation string  `json:"highest_education" db:"highest_education"`
	College          *string `json:"college" db:"college"`
	Degree           *string `json:"degree" db:"degree"`
	YearOfPassing    *int    `json:"year_of_passing" db:"year_of_passing"`
}

type Career struct {
	ID           int     `json:"id" db:"id"`
	UserID       int     `json:"user_id" db:"user_id"`
	Occupation   string  `json:"occupation" db:"occupation"`
	EmployedIn   *string `json:"employed_in" db:"employed_in"`
	Company      *string `json:"company" db:"company"`
	AnnualIncome *string `json:"annual_income" db:"annual_income"`
}

type Family struct {
	ID              int     `json:"id" db:"id"`
	UserID          int     `json:"user_id" db:"user_id"`
	FatherStatus    *string `json:"father_status" db:"father_status"`
	MotherStatus    *string `json:"mother_status" db:"mother_status"`
	FamilyType      *string `json:"family_type" db:"family_type"`
	FamilyValues    *string `json:"family_values" db:"family_values"`
	FamilyAffluence *string `json:"family_affluence" db:"family_affluence"`
	Siblings        *int    `json:"siblings" db:"siblings"`
}
