package reminder

import (
	"fmt"
	"time"
)

// Month is one of the twelve calendar months, January being zero.
type Month uint8

const (
	January Month = iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if int(m) < len(monthNames) {
		return monthNames[m]
	}
	return fmt.Sprintf("Month(%d)", uint8(m))
}

// Date is a calendar day as written in a REM line. Values are not range checked.
type Date struct {
	Day   uint8
	Month Month
	Year  uint16
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month)+1, d.Day)
}

// Time converts d to midnight in loc. Out-of-range days roll over the way
// time.Date normalizes them.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(int(d.Year), time.Month(d.Month)+1, int(d.Day), 0, 0, 0, 0, loc)
}

// Time is a wall-clock hour and minute. Hour may exceed 23.
type Time struct {
	Hour   uint8
	Minute uint8
}

// String formats the time as HH:MM.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Entry is one parsed REM line.
type Entry struct {
	Date     Date
	Time     Time
	Duration time.Duration
	Msg      string
}

// FormatDuration renders d as H:MM, the notation used by DURATION.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
