package domain

import "time"

type InterestStatus string

const (
	InterestPending  InterestStatus = "pending"
	InterestAccepted InterestStatus = "accepted"
	InterestRejected InterestStatus = "rejected"
)

// ParseResponseStatus accepts only the statuses a receiver may answer with.
func ParseResponseStatus(s string) (InterestStatus, error) {
	switch InterestStatus(s) {
	case InterestAccepted, InterestRejected:
		return InterestStatus(s), nil
	}
	return "", ErrInvalidInterestStatus
}

type Interest struct {
	ID         int            `json:"id" db:"id"`
	SenderID   int            `json:"sender_id" db:"sender_id"`
	ReceiverID int            `json:"receiver_id" db:"receiver_id"`
	Status     InterestStatus `json:"status" db:"status"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

func (i *Interest) HasUser(userID int) bool {
	return i.SenderID == userID || i.ReceiverID == userID
}

func (i *Interest) GetOtherUserID(userID int) (int, bool) {
	if i.SenderID == userID {
		return i.ReceiverID, true
	}
	if i.ReceiverID == userID {
		return i.SenderID, true
	}
	return 0, false
}
