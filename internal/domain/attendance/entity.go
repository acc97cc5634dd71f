package attendance

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPresent  Status = "Present"
	StatusAbsent   Status = "Absent"
	StatusHalfDay  Status = "HalfDay"
	StatusHoliday  Status = "Holiday"
	StatusOverTime Status = "OverTime"
	StatusWeekend  Status = "Weekend"
)

// Origin records which client produced the punch, derived from the
// request signature rather than trusted client input.
type Origin string

const (
	OriginMobile  Origin = "Mobile"
	OriginWeb     Origin = "Web"
	OriginPostman Origin = "Postman"
)

// LocationSnapshot captures where a punch happened. Address is filled
// by reverse geocoding when available and left nil otherwise.
type LocationSnapshot struct {
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	Address              *string  `json:"address,omitempty"`
	BranchDistanceMeters *float64 `json:"branch_distance_meters,omitempty"`
}

// Value implements driver.Valuer for JSONB storage
func (l LocationSnapshot) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval
func (l *LocationSnapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return fmt.Errorf("failed to scan LocationSnapshot: unsupported type %T", value)
		}
	}
	return json.Unmarshal(bytes, l)
}

// Attendance is one work-day row per user. Date is the branch-local
// calendar day at midnight; punch timestamps are stored in UTC.
type Attendance struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	PunchIn          *time.Time
	PunchOut         *time.Time
	Status           Status
	Origin           Origin
	PunchInLocation  *LocationSnapshot
	PunchOutLocation *LocationSnapshot
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WorkedDuration returns the span between punch in and punch out, or
// zero when either side is missing.
func (a *Attendance) WorkedDuration() time.Duration {
	if a.PunchIn == nil || a.PunchOut == nil {
		return 0
	}
	d := a.PunchOut.Sub(*a.PunchIn)
	if d < 0 {
		return 0
	}
	return d
}

// Rules holds the punch policy applied when deriving statuses.
type Rules struct {
	LateCutoffHour   int
	LateCutoffMinute int
	FullDayHours     int
}

func DefaultRules() Rules {
	return Rules{
		LateCutoffHour:   9,
		LateCutoffMinute: 15,
		FullDayHours:     9,
	}
}
