package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

type horoscopeRepository struct {
	db *sqlx.DB
}

func NewHoroscopeRepository(db *sqlx.DB) repository.HoroscopeRepository {
	return &horoscopeRepository{db: db}
}

func (r *horoscopeRepository) Upsert(ctx context.Context, h *domain.Horoscope) error {
	query := `
		INSERT INTO horoscopes (
			user_id, date_of_birth, time_of_birth, place_of_birth, manglik, sun,
			moon, venus, mars, mercury, jupiter, saturn, rahu, ketu, nakshatra
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id) DO UPDATE SET
			date_of_birth = EXCLUDED.date_of_birth, time_of_birth = EXCLUDED.time_of_birth,
			place_of_birth = EXCLUDED.place_of_birth, manglik = EXCLUDED.manglik,
			sun = EXCLUDED.sun, moon = EXCLUDED.moon, venus = EXCLUDED.venus,
			mars = EXCLUDED.mars, mercury = EXCLUDED.mercury, jupiter = EXCLUDED.jupiter,
			saturn = EXCLUDED.saturn, rahu = EXCLUDED.rahu, ketu = EXCLUDED.ketu,
			nakshatra = EXCLUDED.nakshatra,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		h.UserID, h.DateOfBirth, h.TimeOfBirth, h.PlaceOfBirth, h.Manglik, h.Sun,
		h.Moon, h.Venus, h.Mars, h.Mercury, h.Jupiter, h.Saturn, h.Rahu, h.Ketu, h.Nakshatra,
	).Scan(&h.ID, &h.UpdatedAt)
}

func (r *horoscopeRepository) GetByUserID(ctx context.Context, userID int) (*domain.Horoscope, error) {
	query := `SELECT ` + horoscopeColumns + ` FROM horoscopes WHERE user_id = $1`
	h, err := scanHoroscope(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHoroscopeNotFound
		}
		return nil, err
	}
	return h, nil
}
