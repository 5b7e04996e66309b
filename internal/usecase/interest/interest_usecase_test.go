package interest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/matrimony-backend/internal/repository/memory"
)

func newTestUseCase(t *testing.T) *InterestUseCase {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	for id, name := range map[int]string{1: "Ananya", 2: "Ravi", 3: "Arjun"} {
		require.NoError(t, store.Profiles().Upsert(ctx, &domain.Profile{UserID: id, FullName: name}))
	}
	return NewInterestUseCase(store.Interests(), store.Profiles(), logger.Discard())
}

func TestSend(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	interest, err := uc.Send(ctx, 1, &SendInterestRequest{ReceiverID: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.InterestPending, interest.Status)
	assert.NotZero(t, interest.ID)

	_, err = uc.Send(ctx, 1, &SendInterestRequest{ReceiverID: 2})
	assert.ErrorIs(t, err, domain.ErrInterestAlreadySent)

	// the reverse direction is a separate interest
	_, err = uc.Send(ctx, 2, &SendInterestRequest{ReceiverID: 1})
	assert.NoError(t, err)
}

func TestSend_Rejects(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Send(ctx, 1, &SendInterestRequest{ReceiverID: 1})
	assert.ErrorIs(t, err, domain.ErrCannotInterestSelf)

	_, err = uc.Send(ctx, 1, &SendInterestRequest{ReceiverID: 42})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestRespond(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	interest, err := uc.Send(ctx, 1, &SendInterestRequest{ReceiverID: 2})
	require.NoError(t, err)

	tests := []struct {
		name    string
		userID  int
		id      int
		status  string
		wantErr error
	}{
		{"bad status", 2, interest.ID, "pending", domain.ErrInvalidInterestStatus},
		{"unknown interest", 2, 999, "accepted", domain.ErrInterestNotFound},
		{"sender cannot answer", 1, interest.ID, "accepted", domain.ErrForbidden},
		{"outsider cannot answer", 3, interest.ID, "rejected", domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Respond(ctx, tt.userID, tt.id, &RespondInterestRequest{Status: tt.status})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	updated, err := uc.Respond(ctx, 2, interest.ID, &RespondInterestRequest{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, domain.InterestAccepted, updated.Status)

	_, err = uc.Respond(ctx, 2, interest.ID, &RespondInterestRequest{Status: "rejected"})
	assert.ErrorIs(t, err, domain.ErrInterestNotPending)
}

func TestListSentAndReceived(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	first, err := uc.Send(ctx, 2, &SendInterestRequest{ReceiverID: 1})
	require.NoError(t, err)
	second, err := uc.Send(ctx, 3, &SendInterestRequest{ReceiverID: 1})
	require.NoError(t, err)

	received, err := uc.ListReceived(ctx, 1)
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, second.ID, received[0].ID)
	assert.Equal(t, "Arjun", received[0].Profile.FullName)
	assert.Equal(t, first.ID, received[1].ID)
	assert.Equal(t, "Ravi", received[1].Profile.FullName)

	sent, err := uc.ListSent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "Ananya", sent[0].Profile.FullName)

	none, err := uc.ListSent(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
