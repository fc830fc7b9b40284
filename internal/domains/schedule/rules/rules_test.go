package rules_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetslot/internal/domains/schedule/rules"
	"meetslot/shared/failure"
	"meetslot/shared/timezone"
)

var ist = timezone.Fixed()

func TestNormalizeTo24Hour(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		reason   string
	}{
		{name: "24 hour passes through", input: "14:00", expected: "14:00"},
		{name: "24 hour single digit hour is padded", input: "9:30", expected: "09:30"},
		{name: "midnight 24 hour", input: "00:00", expected: "00:00"},
		{name: "pm with space", input: "2:00 PM", expected: "14:00"},
		{name: "pm without space lower case", input: "2:00pm", expected: "14:00"},
		{name: "am morning", input: "9:30 AM", expected: "09:30"},
		{name: "twelve am is midnight", input: "12:00 AM", expected: "00:00"},
		{name: "twelve pm is noon", input: "12:30 PM", expected: "12:30"},
		{name: "eleven pm", input: "11:59 PM", expected: "23:59"},
		{name: "surrounding spaces", input: "  10:00  ", expected: "10:00"},
		{name: "hour out of range", input: "24:00", reason: failure.ReasonInvalidTimeFormat},
		{name: "minute out of range", input: "10:60", reason: failure.ReasonInvalidTimeFormat},
		{name: "zero hour with marker", input: "0:30 AM", reason: failure.ReasonInvalidTimeFormat},
		{name: "thirteen with marker", input: "13:00 PM", reason: failure.ReasonInvalidTimeFormat},
		{name: "garbage", input: "noon", reason: failure.ReasonInvalidTimeFormat},
		{name: "empty", input: "", reason: failure.ReasonInvalidTimeFormat},
		{name: "seconds", input: "10:00:00", reason: failure.ReasonInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rules.NormalizeTo24Hour(tt.input)

			if tt.reason != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.reason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeTo24Hour_Equivalence(t *testing.T) {
	for hour := range 24 {
		for _, minute := range []int{0, 30} {
			time24 := fmt.Sprintf("%02d:%02d", hour, minute)
			time12 := rules.DisplayTime(time24)

			from24, err := rules.NormalizeTo24Hour(time24)
			require.NoError(t, err)

			from12, err := rules.NormalizeTo24Hour(time12)
			require.NoError(t, err)

			assert.Equal(t, time24, from24)
			assert.Equal(t, time24, from12, "12 hour form %q", time12)
		}
	}
}

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "9:00 AM", rules.DisplayTime("09:00"))
	assert.Equal(t, "12:00 PM", rules.DisplayTime("12:00"))
	assert.Equal(t, "5:30 PM", rules.DisplayTime("17:30"))
	assert.Equal(t, "12:00 AM", rules.DisplayTime("00:00"))
	assert.Equal(t, "bogus", rules.DisplayTime("bogus"))
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, ist)

	tests := []struct {
		name     string
		date     string
		time     string
		now      time.Time
		weekday  bool
		business bool
		future   bool
		day      time.Weekday
	}{
		{name: "monday afternoon", date: "2025-09-08", time: "14:00", now: now, weekday: true, business: true, future: true, day: time.Monday},
		{name: "sunday", date: "2025-09-07", time: "10:00", now: now, weekday: false, business: true, future: true, day: time.Sunday},
		{name: "saturday", date: "2025-09-06", time: "10:00", now: now, weekday: false, business: true, future: true, day: time.Saturday},
		{name: "opening boundary", date: "2025-09-08", time: "09:00", now: now, weekday: true, business: true, future: true, day: time.Monday},
		{name: "before opening", date: "2025-09-08", time: "08:59", now: now, weekday: true, business: false, future: true, day: time.Monday},
		{name: "last minute of business", date: "2025-09-08", time: "17:59", now: now, weekday: true, business: true, future: true, day: time.Monday},
		{name: "closing boundary", date: "2025-09-08", time: "18:00", now: now, weekday: true, business: false, future: true, day: time.Monday},
		{name: "past slot", date: "2025-09-01", time: "09:30", now: now, weekday: true, business: true, future: false, day: time.Monday},
		{name: "exactly now is not future", date: "2025-09-01", time: "10:00", now: now, weekday: true, business: true, future: false, day: time.Monday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := rules.Evaluate(tt.date, tt.time, tt.now, ist)

			require.NoError(t, err)
			assert.Equal(t, tt.weekday, eval.IsWeekday)
			assert.Equal(t, tt.business, eval.IsBusinessHours)
			assert.Equal(t, tt.future, eval.IsFuture)
			assert.Equal(t, tt.day, eval.DayOfWeek)
			assert.Equal(t, tt.date, eval.Date)
			assert.Equal(t, tt.time, eval.Time)
		})
	}
}

func TestEvaluate_UsesTargetZone(t *testing.T) {
	// 09:00 IST is 03:30 UTC; a now of 03:00 UTC is still before it.
	now := time.Date(2025, 9, 8, 3, 0, 0, 0, time.UTC)

	eval, err := rules.Evaluate("2025-09-08", "09:00", now, ist)

	require.NoError(t, err)
	assert.True(t, eval.IsFuture)
	assert.Equal(t, time.Date(2025, 9, 8, 3, 30, 0, 0, time.UTC), eval.Start.UTC())
}

func TestEvaluate_InvalidInput(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, ist)

	_, err := rules.Evaluate("2025/09/08", "10:00", now, ist)
	assert.Equal(t, failure.ReasonInvalidDateFormat, failure.GetReason(err))

	_, err = rules.Evaluate("2025-09-08", "10 AM", now, ist)
	assert.Equal(t, failure.ReasonInvalidTimeFormat, failure.GetReason(err))
}

func TestVerdict_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		eval   rules.Evaluation
		booked bool
		reason string
	}{
		{
			name:   "every rule fails reports weekday",
			eval:   rules.Evaluation{},
			booked: true,
			reason: failure.ReasonNotAWeekday,
		},
		{
			name:   "hours and past fail reports hours",
			eval:   rules.Evaluation{IsWeekday: true},
			booked: true,
			reason: failure.ReasonOutsideBusinessHours,
		},
		{
			name:   "past and booked reports past",
			eval:   rules.Evaluation{IsWeekday: true, IsBusinessHours: true},
			booked: true,
			reason: failure.ReasonPastTimeSlot,
		},
		{
			name:   "only booked",
			eval:   rules.Evaluation{IsWeekday: true, IsBusinessHours: true, IsFuture: true},
			booked: true,
			reason: failure.ReasonSlotAlreadyBooked,
		},
		{
			name: "available",
			eval: rules.Evaluation{IsWeekday: true, IsBusinessHours: true, IsFuture: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.Verdict(tt.eval, tt.booked)

			if tt.reason == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.reason, failure.GetReason(err))
		})
	}
}

func TestSlotStarts(t *testing.T) {
	day, err := rules.ParseDate("2025-09-08", ist)
	require.NoError(t, err)

	starts := rules.SlotStarts(day)

	require.Len(t, starts, 18)
	assert.Equal(t, "09:00", starts[0].Format("15:04"))
	assert.Equal(t, "17:30", starts[len(starts)-1].Format("15:04"))

	for i := 1; i < len(starts); i++ {
		assert.Equal(t, 30*time.Minute, starts[i].Sub(starts[i-1]))
	}
}
