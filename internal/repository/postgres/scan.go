package postgres

import (
	"github.com/lib/pq"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

// Array columns need pq.Array, so rows are scanned explicitly rather than
// through sqlx struct mapping.

type rowScanner interface {
	Scan(dest ...any) error
}

const profileColumns = `
	id, user_id, full_name, gender, date_of_birth, height, marital_status,
	religion, mother_tongue, caste, subcaste, gotram, location, state, city,
	country, about, hobbies, profile_picture, created_at, updated_at`

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Gender, &p.DateOfBirth, &p.Height, &p.MaritalStatus,
		&p.Religion, &p.MotherTongue, &p.Caste, &p.Subcaste, &p.Gotram, &p.Location, &p.State, &p.City,
		&p.Country, &p.About, pq.Array(&p.Hobbies), &p.ProfilePicture, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const educationColumns = `id, user_id, highest_education, college, degree, year_of_passing`

func scanEducation(row rowScanner) (*domain.Education, error) {
	var e domain.Education
	if err := row.Scan(&e.ID, &e.UserID, &e.HighestEducation, &e.College, &e.Degree, &e.YearOfPassing); err != nil {
		return nil, err
	}
	return &e, nil
}

const careerColumns = `id, user_id, occupation, employed_in, company, annual_income`

func scanCareer(row rowScanner) (*domain.Career, error) {
	var c domain.Career
	if err := row.Scan(&c.ID, &c.UserID, &c.Occupation, &c.EmployedIn, &c.Company, &c.AnnualIncome); err != nil {
		return nil, err
	}
	return &c, nil
}

const familyColumns = `
	id, user_id, father_status, mother_status, family_type, family_values,
	family_affluence, siblings`

func scanFamily(row rowScanner) (*domain.Family, error) {
	var f domain.Family
	err := row.Scan(
		&f.ID, &f.UserID, &f.FatherStatus, &f.MotherStatus, &f.FamilyType, &f.FamilyValues,
		&f.FamilyAffluence, &f.Siblings,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

const preferenceColumns = `
	id, user_id, min_age, max_age, min_height, max_height, marital_status,
	religion, caste, mother_tongue, location, education, occupation, income,
	specific_requirements, updated_at`

func scanPreference(row rowScanner) (*domain.Preference, error) {
	var p domain.Preference
	err := row.Scan(
		&p.ID, &p.UserID, &p.MinAge, &p.MaxAge, &p.MinHeight, &p.MaxHeight, pq.Array(&p.MaritalStatus),
		pq.Array(&p.Religion), pq.Array(&p.Caste), pq.Array(&p.MotherTongue), pq.Array(&p.Location),
		pq.Array(&p.Education), pq.Array(&p.Occupation), pq.Array(&p.Income),
		&p.SpecificRequirements, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const horoscopeColumns = `
	id, user_id, date_of_birth, time_of_birth, place_of_birth, manglik, sun,
	moon, venus, mars, mercury, jupiter, saturn, rahu, ketu, nakshatra, updated_at`

func scanHoroscope(row rowScanner) (*domain.Horoscope, error) {
	var h domain.Horoscope
	err := row.Scan(
		&h.ID, &h.UserID, &h.DateOfBirth, &h.TimeOfBirth, &h.PlaceOfBirth, &h.Manglik, &h.Sun,
		&h.Moon, &h.Venus, &h.Mars, &h.Mercury, &h.Jupiter, &h.Saturn, &h.Rahu, &h.Ketu, &h.Nakshatra, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
