package branch

import (
	"time"

	"github.com/google/uuid"
)

// Branch is an office location. Timezone is an IANA name and drives all
// local-day arithmetic for the branch's employees. WeekendDays holds
// time.Weekday values (0=Sunday).
type Branch struct {
	ID          uuid.UUID
	Name        string
	Country     string
	Code        string
	Address     *string
	Timezone    string
	WeekendDays []int
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsWeekend reports whether the given weekday is a rest day for this
// branch.
func (b *Branch) IsWeekend(day time.Weekday) bool {
	for _, d := range b.WeekendDays {
		if time.Weekday(d) == day {
			return true
		}
	}
	return false
}
