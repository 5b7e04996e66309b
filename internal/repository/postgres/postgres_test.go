package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "postgres"), mock
}

var profileCols = []string{
	"id", "user_id", "full_name", "gender", "date_of_birth", "height", "marital_status",
	"religion", "mother_tongue", "caste", "subcaste", "gotram", "location", "state", "city",
	"country", "about", "hobbies", "profile_picture", "created_at", "updated_at",
}

func profileRow(rows *sqlmock.Rows, id, userID int, gender string) *sqlmock.Rows {
	return rows.AddRow(
		id, userID, "Test User", gender, time.Date(1995, time.January, 10, 0, 0, 0, 0, time.UTC), 165, "Never Married",
		"Hindu", "Odia", "Brahmin", nil, nil, "Bhubaneswar, Odisha", "Odisha", "Bhubaneswar",
		"India", nil, "{reading,music}", nil, testTime, testTime,
	)
}

var preferenceCols = []string{
	"id", "user_id", "min_age", "max_age", "min_height", "max_height", "marital_status",
	"religion", "caste", "mother_tongue", "location", "education", "occupation", "income",
	"specific_requirements", "updated_at",
}

var horoscopeCols = []string{
	"id", "user_id", "date_of_birth", "time_of_birth", "place_of_birth", "manglik", "sun",
	"moon", "venus", "mars", "mercury", "jupiter", "saturn", "rahu", "ketu", "nakshatra", "updated_at",
}

var educationCols = []string{"id", "user_id", "highest_education", "college", "degree", "year_of_passing"}

var careerCols = []string{"id", "user_id", "occupation", "employed_in", "company", "annual_income"}

var familyCols = []string{
	"id", "user_id", "father_status", "mother_status", "family_type", "family_values",
	"family_affluence", "siblings",
}

var interestCols = []string{"id", "sender_id", "receiver_id", "status", "created_at", "updated_at"}

var userCols = []string{
	"id", "username", "email", "password_hash", "is_verified", "is_profile_complete", "role", "created_at",
}
