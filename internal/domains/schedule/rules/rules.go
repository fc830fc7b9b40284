// Package rules holds the pure calendar arithmetic behind slot availability:
// converting between 12 and 24 hour clocks and judging a (date, time) against
// the weekday, business hour and past/future rules. Nothing here performs I/O.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"meetslot/internal/domains/schedule/model"
	"meetslot/shared/constant"
	"meetslot/shared/failure"
)

const (
	messageInvalidTime = "Invalid time format. Use HH:MM (24-hour) or H:MM AM/PM"
	messageInvalidDate = "Invalid date format. Use YYYY-MM-DD"

	hoursPerHalfDay = 12
)

var (
	clock24 = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12 = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
)

// Evaluation is the outcome of the calendar rules for one composed instant.
type Evaluation struct {
	Date            string
	Time            string
	DayOfWeek       time.Weekday
	IsWeekday       bool
	IsBusinessHours bool
	IsFuture        bool
	Start           time.Time
}

// NormalizeTo24Hour accepts "14:00", "9:30", "2:00 PM" or "2:00pm" and returns "HH:MM".
func NormalizeTo24Hour(input string) (string, error) {
	value := strings.TrimSpace(input)

	if match := clock12.FindStringSubmatch(value); match != nil {
		hour, _ := strconv.Atoi(match[1])
		minute, _ := strconv.Atoi(match[2])

		if hour < 1 || hour > hoursPerHalfDay || minute > 59 {
			return "", invalidTime()
		}

		isPM := strings.EqualFold(match[3], "PM")

		switch {
		case hour == hoursPerHalfDay && !isPM:
			hour = 0
		case hour != hoursPerHalfDay && isPM:
			hour += hoursPerHalfDay
		}

		return fmt.Sprintf("%02d:%02d", hour, minute), nil
	}

	if match := clock24.FindStringSubmatch(value); match != nil {
		hour, _ := strconv.Atoi(match[1])
		minute, _ := strconv.Atoi(match[2])

		if hour > 23 || minute > 59 {
			return "", invalidTime()
		}

		return fmt.Sprintf("%02d:%02d", hour, minute), nil
	}

	return "", invalidTime()
}

// DisplayTime renders "HH:MM" as "H:MM AM|PM". Input that does not parse is returned as is.
func DisplayTime(time24 string) string {
	parsed, err := time.Parse(constant.TimeLayout24H, time24)
	if err != nil {
		return time24
	}

	return parsed.Format(constant.TimeLayout12H)
}

// ParseDate reads a civil "YYYY-MM-DD" date as midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(constant.DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, failure.Rejected(failure.ReasonInvalidDateFormat, messageInvalidDate) //nolint:wrapcheck
	}

	return day, nil
}

// IsWeekday reports Monday through Friday.
func IsWeekday(day time.Weekday) bool {
	return day >= time.Monday && day <= time.Friday
}

// Compose joins a civil date and an "HH:MM" time into an instant in loc.
func Compose(date, time24 string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}

	clock, err := time.Parse(constant.TimeLayout24H, time24)
	if err != nil {
		return time.Time{}, invalidTime()
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

// Evaluate applies the weekday, business hour and future rules. The weekday comes from
// the date alone; the hour and future checks use the composed instant.
func Evaluate(date, time24 string, now time.Time, loc *time.Location) (Evaluation, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return Evaluation{}, err
	}

	start, err := Compose(date, time24, loc)
	if err != nil {
		return Evaluation{}, err
	}

	hour := start.In(loc).Hour()

	return Evaluation{
		Date:            day.Format(constant.DateLayout),
		Time:            start.Format(constant.TimeLayout24H),
		DayOfWeek:       day.Weekday(),
		IsWeekday:       IsWeekday(day.Weekday()),
		IsBusinessHours: hour >= constant.BusinessHourStart && hour < constant.BusinessHourEnd,
		IsFuture:        start.After(now),
		Start:           start,
	}, nil
}

// Verdict picks the single reason surfaced for an evaluation. The order is fixed:
// weekday, business hours, past, booked. A nil error means the slot can be booked.
func Verdict(eval Evaluation, booked bool) error {
	switch {
	case !eval.IsWeekday:
		return failure.Rejected(failure.ReasonNotAWeekday, model.MessageNotAWeekday) //nolint:wrapcheck
	case !eval.IsBusinessHours:
		return failure.Rejected(failure.ReasonOutsideBusinessHours, model.MessageOutsideBusinessHours) //nolint:wrapcheck
	case !eval.IsFuture:
		return failure.Rejected(failure.ReasonPastTimeSlot, model.MessagePastTimeSlot) //nolint:wrapcheck
	case booked:
		return failure.Rejected(failure.ReasonSlotAlreadyBooked, model.MessageSlotAlreadyBooked) //nolint:wrapcheck
	}

	return nil
}

// SlotStarts lists every bookable start on a date: 09:00 through 17:30 in 30 minute steps.
// 18:00 is the open upper bound and never generated.
func SlotStarts(day time.Time) []time.Time {
	loc := day.Location()
	first := time.Date(day.Year(), day.Month(), day.Day(), constant.BusinessHourStart, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), constant.BusinessHourEnd, 0, 0, 0, loc)

	starts := make([]time.Time, 0, int(end.Sub(first)/constant.SlotGranularity))
	for start := first; start.Before(end); start = start.Add(constant.SlotGranularity) {
		starts = append(starts, start)
	}

	return starts
}

func invalidTime() error {
	return failure.Rejected(failure.ReasonInvalidTimeFormat, messageInvalidTime) //nolint:wrapcheck
}
