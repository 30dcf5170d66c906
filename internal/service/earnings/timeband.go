package earnings

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// Time-of-day band boundaries, minutes from midnight. Fixed by the contract:
// day 06:00-20:00, evening 20:00-22:00, night 22:00-06:00.
const (
	dayStartMin     = 6 * 60
	eveningStartMin = 20 * 60
	nightStartMin   = 22 * 60
)

type Band int

const (
	BandDay Band = iota
	BandEvening
	BandNight
)

// BandMinutes - minutes attributed to each band, indexed by Band.
type BandMinutes [3]int

func (b BandMinutes) Total() int {
	return b[BandDay] + b[BandEvening] + b[BandNight]
}

// ParseClock converts an "HH:MM" value to minute-of-day. Malformed input is
// reported as absent, never as an error: a bad clock string degrades to a
// zero-length interval downstream.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// Duration returns the minutes between two clock values. An end at or before
// the start crosses midnight and gains 24h. Missing or malformed input
// contributes zero minutes.
func Duration(start, end string) int {
	s, ok := ParseClock(start)
	if !ok {
		return 0
	}
	e, ok := ParseClock(end)
	if !ok {
		return 0
	}
	if e <= s {
		e += minutesPerDay
	}
	return e - s
}

var sixty = decimal.NewFromInt(60)

// MinutesToHours converts exactly; rounding is a presentation concern.
func MinutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}

func bandOf(minuteOfDay int) Band {
	switch {
	case minuteOfDay >= dayStartMin && minuteOfDay < eveningStartMin:
		return BandDay
	case minuteOfDay >= eveningStartMin && minuteOfDay < nightStartMin:
		return BandEvening
	default:
		return BandNight
	}
}

// nextBoundary returns the first band boundary strictly after the given
// minute-of-day, with midnight closing the night band's tail.
func nextBoundary(minuteOfDay int) int {
	for _, b := range [...]int{dayStartMin, eveningStartMin, nightStartMin} {
		if minuteOfDay < b {
			return b
		}
	}
	return minutesPerDay
}

// SplitBands walks an interval of the given duration starting at startMin,
// splitting it at every band boundary (and again at midnight) so that every
// minute lands in exactly one band.
func SplitBands(startMin, duration int) BandMinutes {
	var out BandMinutes
	t := ((startMin % minutesPerDay) + minutesPerDay) % minutesPerDay
	remaining := duration
	for remaining > 0 {
		step := nextBoundary(t) - t
		if step > remaining {
			step = remaining
		}
		out[bandOf(t)] += step
		t = (t + step) % minutesPerDay
		remaining -= step
	}
	return out
}
