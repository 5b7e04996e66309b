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

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *domain.Preference) error {
	query := `
		INSERT INTO preferences (
			user_id, min_age, max_age, min_height, max_height, marital_status,
			religion, caste, mother_tongue, location, education, occupation,
			income, specific_requirements
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			min_age = EXCLUDED.min_age, max_age = EXCLUDED.max_age,
			min_height = EXCLUDED.min_height, max_height = EXCLUDED.max_height,
			marital_status = EXCLUDED.marital_status, religion = EXCLUDED.religion,
			caste = EXCLUDED.caste, mother_tongue = EXCLUDED.mother_tongue,
			location = EXCLUDED.location, education = EXCLUDED.education,
			occupation = EXCLUDED.occupation, income = EXCLUDED.income,
			specific_requirements = EXCLUDED.specific_requirements,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		pref.UserID, pref.MinAge, pref.MaxAge, pref.MinHeight, pref.MaxHeight,
		pq.Array(pref.MaritalStatus), pq.Array(pref.Religion), pq.Array(pref.Caste),
		pq.Array(pref.MotherTongue), pq.Array(pref.Location), pq.Array(pref.Education),
		pq.Array(pref.Occupation), pq.Array(pref.Income), pref.SpecificRequirements,
	).Scan(&pref.ID, &pref.UpdatedAt)
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID int) (*domain.Preference, error) {
	query := `SELECT ` + preferenceColumns + ` FROM preferences WHERE user_id = $1`
	pref, err := scanPreference(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, err
	}
	return pref, nil
}
