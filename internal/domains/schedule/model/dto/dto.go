package dto

import (
	"meetslot/internal/domains/schedule/rules"
)

type AvailabilityQuery struct {
	Date string `json:"date" validate:"required,civildate"`
	Time string `json:"time" validate:"required"`
}

type DateQuery struct {
	Date string `json:"date" validate:"required,civildate"`
}

type AvailabilityResponse struct {
	Available       bool   `json:"available"`
	Message         string `json:"message"`
	Reason          string `json:"reason"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DisplayTime     string `json:"displayTime"`
	DayOfWeek       string `json:"dayOfWeek"`
	IsWeekday       bool   `json:"isWeekday"`
	IsBusinessHours bool   `json:"isBusinessHours"`
	IsFuture        bool   `json:"isFuture"`
	IsBooked        bool   `json:"isBooked"`
}

func (r *AvailabilityResponse) FromEvaluation(eval rules.Evaluation, booked bool) {
	r.Date = eval.Date
	r.Time = eval.Time
	r.DisplayTime = rules.DisplayTime(eval.Time)
	r.DayOfWeek = eval.DayOfWeek.String()
	r.IsWeekday = eval.IsWeekday
	r.IsBusinessHours = eval.IsBusinessHours
	r.IsFuture = eval.IsFuture
	r.IsBooked = booked
}

type TimeSlotResponse struct {
	Time        string `json:"time"`
	DisplayTime string `json:"displayTime"`
	Available   bool   `json:"available"`
	Reason      string `json:"reason"`
}

type SlotsResponse struct {
	Date           string             `json:"date"`
	DayOfWeek      string             `json:"dayOfWeek"`
	Available      bool               `json:"available"`
	Message        string             `json:"message"`
	TotalSlots     int                `json:"totalSlots"`
	AvailableSlots int                `json:"availableSlots"`
	Slots          []TimeSlotResponse `json:"slots"`
}

// Count fills the totals from Slots.
func (r *SlotsResponse) Count() {
	r.TotalSlots = len(r.Slots)
	r.AvailableSlots = 0

	for _, slot := range r.Slots {
		if slot.Available {
			r.AvailableSlots++
		}
	}
}

type BookedSlotResponse struct {
	Time        string `json:"time"`
	DisplayTime string `json:"displayTime"`
	Booked      bool   `json:"booked"`
}

type BookedSlotsResponse struct {
	Date        string               `json:"date"`
	BookedSlots []BookedSlotResponse `json:"bookedSlots"`
}

func (r *BookedSlotsResponse) FromTimes(date string, times []string) {
	r.Date = date
	r.BookedSlots = make([]BookedSlotResponse, 0, len(times))

	for _, t := range times {
		r.BookedSlots = append(r.BookedSlots, BookedSlotResponse{
			Time:        t,
			DisplayTime: rules.DisplayTime(t),
			Booked:      true,
		})
	}
}

type ReleaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}
