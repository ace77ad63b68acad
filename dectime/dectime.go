// Package dectime converts wall-clock instants into decimal time and into
// normalized clock-hand angles.
//
// Decimal time divides the day into 10 hours of 100 minutes of 100 seconds.
// One decimal second lasts 0.864 standard seconds, so a full day spans 100000
// decimal ticks.
//
// All functions in this package are pure and safe for concurrent use.
package dectime

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Constants describing the decimal day.
const (
	TicksPerDay   = 100000
	TickSeconds   = 0.864 // standard seconds per decimal second
	SecondsPerDay = 24 * 60 * 60
)

var (
	ErrOutOfRange  = errors.New("wall clock field out of range")
	ErrUnknownMode = errors.New("unknown hand mode")
)

// WallClock is a snapshot of a standard 24-hour clock reading. The calendar
// fields are carried along untouched by every conversion.
type WallClock struct {
	Hour   int // [0,23]
	Minute int // [0,59]
	Second int // [0,59]

	Day     int
	Month   time.Month
	Year    int
	Weekday time.Weekday
	YearDay int
}

// FromTime captures the wall clock reading of t in t's location.
func FromTime(t time.Time) WallClock {
	h, m, s := t.Clock()
	return WallClock{
		Hour:    h,
		Minute:  m,
		Second:  s,
		Day:     t.Day(),
		Month:   t.Month(),
		Year:    t.Year(),
		Weekday: t.Weekday(),
		YearDay: t.YearDay(),
	}
}

// Valid reports whether the clock fields are within their standard ranges.
func (w WallClock) Valid() bool {
	return w.Hour >= 0 && w.Hour < 24 &&
		w.Minute >= 0 && w.Minute < 60 &&
		w.Second >= 0 && w.Second < 60
}

// Seconds returns the number of standard seconds elapsed since midnight.
func (w WallClock) Seconds() int {
	return w.Hour*3600 + w.Minute*60 + w.Second
}

// Clock formats the hour and minute as HHMM.
func (w WallClock) Clock() string {
	return fmt.Sprintf("%02d%02d", w.Hour, w.Minute)
}

// Decimal is the decimal-time rendering of a WallClock.
type Decimal struct {
	Hour   int // [0,9]
	Minute int // [0,99]
	Second int // [0,99]

	Day     int
	Month   time.Month
	Year    int
	Weekday time.Weekday
	YearDay int
}

// Ticks returns the decimal seconds elapsed since midnight.
func (d Decimal) Ticks() int {
	return d.Hour*10000 + d.Minute*100 + d.Second
}

// Clock formats the decimal hour and minute as HHMM.
func (d Decimal) Clock() string {
	return fmt.Sprintf("%02d%02d", d.Hour, d.Minute)
}

// Ticks returns floor(w.Seconds() / 0.864), wrapped into [0, TicksPerDay).
// The division is done in floating point and floored so that exact boundaries
// such as midnight land on a whole tick.
func Ticks(w WallClock) (int, error) {
	if !w.Valid() {
		return 0, fmt.Errorf("%w: %02d:%02d:%02d", ErrOutOfRange, w.Hour, w.Minute, w.Second)
	}
	return ticks(w.Seconds()), nil
}

func ticks(seconds int) int {
	t := int(math.Floor(float64(seconds) / TickSeconds))
	return t % TicksPerDay
}

// ToDecimal converts w to decimal time. Readings outside the standard clock
// ranges are rejected with ErrOutOfRange.
func ToDecimal(w WallClock) (Decimal, error) {
	t, err := Ticks(w)
	if nil != err {
		return Decimal{}, err
	}
	hour := t / 10000
	t -= hour * 10000
	minute := t / 100
	t -= minute * 100
	return Decimal{
		Hour:    hour,
		Minute:  minute,
		Second:  t,
		Day:     w.Day,
		Month:   w.Month,
		Year:    w.Year,
		Weekday: w.Weekday,
		YearDay: w.YearDay,
	}, nil
}

// MustDecimal is like ToDecimal but panics on invalid input. Intended for
// readings taken from a host clock, which are always in range.
func MustDecimal(w WallClock) Decimal {
	d, err := ToDecimal(w)
	if nil != err {
		panic(err)
	}
	return d
}
