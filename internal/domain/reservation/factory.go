package reservation

import (
	"time"
)

// SlotFactory turns a picked day and hour label into an absolute appointment slot using the
// configured booking timezone.
type SlotFactory struct {
	location *time.Location
}

func NewSlotFactory(location *time.Location) *SlotFactory {
	if location == nil {
		location = time.UTC
	}
	return &SlotFactory{location: location}
}

func (f *SlotFactory) Location() *time.Location {
	return f.location
}

// In returns a factory for another zone, used when a flow carries its own timezone.
func (f *SlotFactory) In(location *time.Location) *SlotFactory {
	if location == nil {
		return f
	}
	return &SlotFactory{location: location}
}

func (f *SlotFactory) Slot(hourLabel string, day time.Time, service Service) (TimeSlot, error) {
	label, err := NewHourLabel(hourLabel)
	if err != nil {
		return TimeSlot{}, err
	}

	start := StartTime(label, day, f.location)
	end := EndTime(start, service.Duration())
	return NewTimeSlot(start, end)
}

// DayStart is the instant at which day begins in the factory's zone. Sent to the
// availability endpoint as the requested date.
func (f *SlotFactory) DayStart(day time.Time) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, f.location).UTC()
}
