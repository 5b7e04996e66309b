package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

func TestInterestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterestRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO interests`).
		WithArgs(1, 2, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, testTime, testTime))
	mock.ExpectQuery(`INSERT INTO interests`).
		WithArgs(1, 2, "pending").
		WillReturnError(&pq.Error{Code: "23505"})

	interest := &domain.Interest{SenderID: 1, ReceiverID: 2, Status: domain.InterestPending}
	require.NoError(t, repo.Create(ctx, interest))
	assert.Equal(t, 10, interest.ID)

	err := repo.Create(ctx, &domain.Interest{SenderID: 1, ReceiverID: 2, Status: domain.InterestPending})
	assert.ErrorIs(t, err, domain.ErrInterestAlreadySent)
}

func TestInterestRepository_GetBySenderAndReceiver(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterestRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`FROM interests WHERE sender_id = \$1 AND receiver_id = \$2`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows(interestCols).AddRow(10, 1, 2, "pending", testTime, testTime))
	mock.ExpectQuery(`FROM interests WHERE sender_id = \$1 AND receiver_id = \$2`).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows(interestCols))

	got, err := repo.GetBySenderAndReceiver(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.InterestPending, got.Status)

	_, err = repo.GetBySenderAndReceiver(ctx, 2, 1)
	assert.ErrorIs(t, err, domain.ErrInterestNotFound)
}

func TestInterestRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterestRepository(db)
	ctx := context.Background()

	update := `UPDATE interests SET status = \$1, updated_at = CURRENT_TIMESTAMP\s+WHERE id = \$2 AND status = \$3`
	mock.ExpectQuery(update).
		WithArgs("accepted", 10, "pending").
		WillReturnRows(sqlmock.NewRows(interestCols).AddRow(10, 1, 2, "accepted", testTime, testTime))

	// already answered by a concurrent request
	mock.ExpectQuery(update).
		WithArgs("rejected", 10, "pending").
		WillReturnRows(sqlmock.NewRows(interestCols))
	mock.ExpectQuery(`SELECT \* FROM interests WHERE id = \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(interestCols).AddRow(10, 1, 2, "accepted", testTime, testTime))

	mock.ExpectQuery(update).
		WithArgs("rejected", 99, "pending").
		WillReturnRows(sqlmock.NewRows(interestCols))
	mock.ExpectQuery(`SELECT \* FROM interests WHERE id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(interestCols))

	got, err := repo.UpdateStatus(ctx, 10, domain.InterestAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.InterestAccepted, got.Status)

	_, err = repo.UpdateStatus(ctx, 10, domain.InterestRejected)
	assert.ErrorIs(t, err, domain.ErrInterestNotPending)

	_, err = repo.UpdateStatus(ctx, 99, domain.InterestRejected)
	assert.ErrorIs(t, err, domain.ErrInterestNotFound)
}

func TestInterestRepository_Lists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterestRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`FROM interests WHERE receiver_id = \$1 ORDER BY created_at DESC`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(interestCols).
			AddRow(11, 3, 2, "pending", testTime, testTime).
			AddRow(10, 1, 2, "accepted", testTime, testTime))
	mock.ExpectQuery(`FROM interests WHERE sender_id = \$1 ORDER BY created_at DESC`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(interestCols))

	received, err := repo.ListByReceiver(ctx, 2)
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, 3, received[0].SenderID)

	sent, err := repo.ListBySender(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, sent)
	assert.Empty(t, sent)
}
