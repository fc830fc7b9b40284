package model

import (
	"errors"

	"meetslot/shared/model"
)

const (
	TableName  = "booked_slots"
	EntityName = "booked_slot"

	FieldDate      = "slot_date"
	FieldTime      = "slot_time"
	FieldMeetingID = "meeting_id"
)

// Reason texts surfaced on computed slots.
const (
	SlotReasonAvailable     = "Available"
	SlotReasonPast          = "Past time slot"
	SlotReasonAlreadyBooked = "Already booked"
)

// Human readable verdicts, in precedence order.
const (
	MessageNotAWeekday          = "Meetings can only be scheduled Monday through Friday"
	MessageOutsideBusinessHours = "Meetings can only be scheduled between 9:00 AM and 6:00 PM IST"
	MessagePastTimeSlot         = "Cannot schedule meetings in the past"
	MessageSlotAlreadyBooked    = "This time slot is already booked"
	MessageAvailable            = "Time slot is available"
	MessageSlotsAvailable       = "Available time slots retrieved"
	MessageNoSlotsLeft          = "No time slots are available on this date"
	MessageSlotReleased         = "Booked slot released"
)

var (
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrSlotNotFound      = errors.New("booked slot not found")
	ErrStoreUnavailable  = errors.New("slot store unavailable")
)

// BookedSlot is one reservation of a (date, time) pair.
type BookedSlot struct {
	Date      string `db:"slot_date"  json:"date"`
	Time      string `db:"slot_time"  json:"time"`
	MeetingID string `db:"meeting_id" json:"meetingId,omitempty"`
	model.Timestamps
}
