package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

type completeProfileRepository struct {
	db *sqlx.DB
}

func NewCompleteProfileRepository(db *sqlx.DB) repository.CompleteProfileReader {
	return &completeProfileRepository{db: db}
}

func (r *completeProfileRepository) GetCompleteProfile(ctx context.Context, userID int) (*domain.CompleteProfile, error) {
	profile, err := scanProfile(r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	cp := &domain.CompleteProfile{UserID: userID, Profile: profile}

	if cp.Education, err = optional(scanEducation(r.db.QueryRowContext(ctx, `SELECT `+educationColumns+` FROM education WHERE user_id = $1`, userID))); err != nil {
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	if cp.Career, err = optional(scanCareer(r.db.QueryRowContext(ctx, `SELECT `+careerColumns+` FROM careers WHERE user_id = $1`, userID))); err != nil {
		return nil, fmt.Errorf("failed to get career: %w", err)
	}
	if cp.Family, err = optional(scanFamily(r.db.QueryRowContext(ctx, `SELECT `+familyColumns+` FROM families WHERE user_id = $1`, userID))); err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if cp.Preferences, err = optional(scanPreference(r.db.QueryRowContext(ctx, `SELECT `+preferenceColumns+` FROM preferences WHERE user_id = $1`, userID))); err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if cp.Horoscope, err = optional(scanHoroscope(r.db.QueryRowContext(ctx, `SELECT `+horoscopeColumns+` FROM horoscopes WHERE user_id = $1`, userID))); err != nil {
		return nil, fmt.Errorf("failed to get horoscope: %w", err)
	}
	return cp, nil
}

// GetAllCompleteProfiles loads every user that has a profile, in profile
// creation order. Sub-records are fetched with one query per table.
func (r *completeProfileRepository) GetAllCompleteProfiles(ctx context.Context) ([]*domain.CompleteProfile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	out := []*domain.CompleteProfile{}
	byUser := map[int]*domain.CompleteProfile{}
	var ids pq.Int64Array
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		cp := &domain.CompleteProfile{UserID: p.UserID, Profile: p}
		out = append(out, cp)
		byUser[p.UserID] = cp
		ids = append(ids, int64(p.UserID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(out) == 0 {
		return out, nil
	}

	if err := loadByUsers(ctx, r.db, "education", educationColumns, ids, scanEducation, func(e *domain.Education) {
		byUser[e.UserID].Education = e
	}); err != nil {
		return nil, err
	}
	if err := loadByUsers(ctx, r.db, "careers", careerColumns, ids, scanCareer, func(c *domain.Career) {
		byUser[c.UserID].Career = c
	}); err != nil {
		return nil, err
	}
	if err := loadByUsers(ctx, r.db, "families", familyColumns, ids, scanFamily, func(f *domain.Family) {
		byUser[f.UserID].Family = f
	}); err != nil {
		return nil, err
	}
	if err := loadByUsers(ctx, r.db, "preferences", preferenceColumns, ids, scanPreference, func(p *domain.Preference) {
		byUser[p.UserID].Preferences = p
	}); err != nil {
		return nil, err
	}
	if err := loadByUsers(ctx, r.db, "horoscopes", horoscopeColumns, ids, scanHoroscope, func(h *domain.Horoscope) {
		byUser[h.UserID].Horoscope = h
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func loadByUsers[T any](
	ctx context.Context,
	db *sqlx.DB,
	table, columns string,
	ids pq.Int64Array,
	scan func(rowScanner) (T, error),
	assign func(T),
) error {
	rows, err := db.QueryContext(ctx, `SELECT `+columns+` FROM `+table+` WHERE user_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", table, err)
		}
		assign(v)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load %s: %w", table, err)
	}
	return nil
}

// optional turns a missing row into a nil record.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
