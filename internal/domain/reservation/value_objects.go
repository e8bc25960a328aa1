package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	hoursPattern     = regexp.MustCompile(`(\d+)\s*h`)
	minutesPattern   = regexp.MustCompile(`(\d+)\s*m`)
	hourLabelPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
)

// ParseDuration reads a human duration such as "1h 30m" and returns whole minutes.
// Missing components count as zero, so unparseable text yields 0.
func ParseDuration(text string) int {
	return captureInt(hoursPattern, text)*60 + captureInt(minutesPattern, text)
}

func captureInt(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// HourLabel is an "HH:MM" start time offered by the availability endpoint.
type HourLabel struct {
	hour   int
	minute int
}

func NewHourLabel(s string) (HourLabel, error) {
	m := hourLabelPattern.FindStringSubmatch(s)
	if m == nil {
		return HourLabel{}, ErrInvalidHourLabel
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return HourLabel{hour: h, minute: mm}, nil
}

func (l HourLabel) Hour() int   { return l.hour }
func (l HourLabel) Minute() int { return l.minute }

func (l HourLabel) String() string {
	return fmt.Sprintf("%02d:%02d", l.hour, l.minute)
}

// StartTime places the label on the calendar date of day, interpreted in loc, and returns
// the absolute instant in UTC. Only the year/month/day of day are used.
func StartTime(label HourLabel, day time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, label.hour, label.minute, 0, 0, loc).UTC()
}

// EndTime adds the parsed duration to start. Crossing midnight is plain instant arithmetic.
func EndTime(start time.Time, durationText string) time.Time {
	return start.Add(time.Duration(ParseDuration(durationText)) * time.Minute)
}

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, errors.New("start and end time are required")
	}
	if end.Before(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}
