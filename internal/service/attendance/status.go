package attendance

import (
	"time"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/timeutil"
)

// cutoffOn returns the late-arrival cutoff instant for the given local
// day. Arriving at the cutoff second exactly still counts as on time.
func cutoffOn(day time.Time, rules attendance.Rules, loc *time.Location) time.Time {
	return timeutil.TimeOfDayOn(day, rules.LateCutoffHour, rules.LateCutoffMinute, 0, loc)
}

func derivePunchInStatus(punchInLocal, cutoff time.Time) attendance.Status {
	if !punchInLocal.After(cutoff) {
		return attendance.StatusPresent
	}
	return attendance.StatusHalfDay
}

// derivePunchOutStatus fixes the day's final status once both punches
// exist. A non-optional holiday wins outright; otherwise an on-time
// arrival stays Present and a late one stays HalfDay.
func derivePunchOutStatus(rules attendance.Rules, punchInLocal, punchOutLocal, cutoff time.Time, onHoliday bool) attendance.Status {
	if onHoliday {
		return attendance.StatusOverTime
	}
	if !punchInLocal.After(cutoff) {
		return attendance.StatusPresent
	}
	// TODO: tighten to a 5-9h presence band once payroll consumers confirm.
	if punchOutLocal.Sub(punchInLocal) < time.Duration(rules.FullDayHours)*time.Hour {
		return attendance.StatusHalfDay
	}
	return attendance.StatusHalfDay
}
