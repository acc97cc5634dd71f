package leave

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeVacation Type = "vacation"
	TypeSick     Type = "sick"
	TypeCasual   Type = "casual"
	TypeUnpaid   Type = "unpaid"
)

// Bucket maps a stored type to its reporting bucket. Values written
// under retired type names fall back to casual.
func (t Type) Bucket() Type {
	switch t {
	case TypeVacation, TypeSick, TypeCasual, TypeUnpaid:
		return t
	}
	return TypeCasual
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
	StatusCanceled RequestStatus = "canceled"
)

// Request is a leave application. Days is fixed at creation time: a
// half-day request is always 0.5, otherwise the inclusive calendar
// span between StartDate and EndDate.
type Request struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          Type
	StartDate     time.Time
	EndDate       time.Time
	HalfDay       bool
	Days          float64
	Reason        string
	Status        RequestStatus
	AttachmentURL *string
	ReviewerID    *uuid.UUID
	ReviewNote    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join
	UserName *string
}

// DeductsBalance reports whether approving this request consumes the
// user's paid allotment. Unpaid leave never touches the balance; it is
// charged through payroll instead.
func (r *Request) DeductsBalance() bool {
	return r.Type != TypeUnpaid
}

// SpanDays computes the day count for the requested range. Half-day
// requests count 0.5 regardless of the range.
func SpanDays(start, end time.Time, halfDay bool) float64 {
	if halfDay {
		return 0.5
	}
	if end.Before(start) {
		return 0
	}
	return float64(end.Sub(start)/(24*time.Hour)) + 1
}
