package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, full_name, gender, date_of_birth, height, marital_status,
			religion, mother_tongue, caste, subcaste, gotram, location, state,
			city, country, about, hobbies, profile_picture
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name, gender = EXCLUDED.gender,
			date_of_birth = EXCLUDED.date_of_birth, height = EXCLUDED.height,
			marital_status = EXCLUDED.marital_status, religion = EXCLUDED.religion,
			mother_tongue = EXCLUDED.mother_tongue, caste = EXCLUDED.caste,
			subcaste = EXCLUDED.subcaste, gotram = EXCLUDED.gotram,
			location = EXCLUDED.location, state = EXCLUDED.state, city = EXCLUDED.city,
			country = EXCLUDED.country, about = EXCLUDED.about, hobbies = EXCLUDED.hobbies,
			profile_picture = EXCLUDED.profile_picture,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.FullName, profile.Gender, profile.DateOfBirth, profile.Height,
		profile.MaritalStatus, profile.Religion, profile.MotherTongue, profile.Caste,
		profile.Subcaste, profile.Gotram, profile.Location, profile.State, profile.City,
		profile.Country, profile.About, pq.Array(profile.Hobbies), profile.ProfilePicture,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) UpsertEducation(ctx context.Context, education *domain.Education) error {
	query := `
		INSERT INTO education (user_id, highest_education, college, degree, year_of_passing)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			highest_education = EXCLUDED.highest_education, college = EXCLUDED.college,
			degree = EXCLUDED.degree, year_of_passing = EXCLUDED.year_of_passing
		RETURNING id
	`
	return r.db.QueryRowContext(
		ctx, query,
		education.UserID, education.HighestEducation, education.College, education.Degree, education.YearOfPassing,
	).Scan(&education.ID)
}

func (r *profileRepository) GetEducation(ctx context.Context, userID int) (*domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE user_id = $1`
	education, err := scanEducation(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEducationNotFound
		}
		return nil, err
	}
	return education, nil
}

func (r *profileRepository) UpsertCareer(ctx context.Context, career *domain.Career) error {
	query := `
		INSERT INTO careers (user_id, occupation, employed_in, company, annual_income)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			occupation = EXCLUDED.occupation, employed_in = EXCLUDED.employed_in,
			company = EXCLUDED.company, annual_income = EXCLUDED.annual_income
		RETURNING id
	`
	return r.db.QueryRowContext(
		ctx, query,
		career.UserID, career.Occupation, career.EmployedIn, career.Company, career.AnnualIncome,
	).Scan(&career.ID)
}

func (r *profileRepository) GetCareer(ctx context.Context, userID int) (*domain.Career, error) {
	query := `SELECT ` + careerColumns + ` FROM careers WHERE user_id = $1`
	career, err := scanCareer(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCareerNotFound
		}
		return nil, err
	}
	return career, nil
}

func (r *profileRepository) UpsertFamily(ctx context.Context, family *domain.Family) error {
	query := `
		INSERT INTO families (
			user_id, father_status, mother_status, family_type, family_values,
			family_affluence, siblings
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			father_status = EXCLUDED.father_status, mother_status = EXCLUDED.mother_status,
			family_type = EXCLUDED.family_type, family_values = EXCLUDED.family_values,
			family_affluence = EXCLUDED.family_affluence, siblings = EXCLUDED.siblings
		RETURNING id
	`
	return r.db.QueryRowContext(
		ctx, query,
		family.UserID, family.FatherStatus, family.MotherStatus, family.FamilyType,
		family.FamilyValues, family.FamilyAffluence, family.Siblings,
	).Scan(&family.ID)
}

func (r *profileRepository) GetFamily(ctx context.Context, userID int) (*domain.Family, error) {
	query := `SELECT ` + familyColumns + ` FROM families WHERE user_id = $1`
	family, err := scanFamily(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, err
	}
	return family, nil
}
