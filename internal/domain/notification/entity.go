package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeLateArrival    Type = "late_arrival"
	TypeOvertimeWorked Type = "overtime_worked"
	TypePayslipReady   Type = "payslip_ready"
	TypeLeaveSubmitted Type = "leave_submitted"
	TypeLeaveReviewed  Type = "leave_reviewed"
	TypeMarkedAbsent   Type = "marked_absent"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      Type
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
