// Package weather implements the watchface side of the weather side-channel:
// the periodic outbound request, and parsing of the key-indexed dictionary the
// phone companion answers with.
package weather

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/decimalwatch/dectime"
)

// Key indexes a field of a message dictionary.
type Key uint32

// Keys understood by the companion.
const (
	KeyTemperature Key = 0
	KeyConditions  Key = 1

	// KeyRequest carries the single-byte marker of an outbound request.
	KeyRequest Key = 0
)

// Maximum lengths, in bytes, of the text held for each field.
const (
	MaxTemperature = 7
	MaxConditions  = 31
	MaxReport      = 31
)

// DefaultInterval is the number of minutes between weather requests.
const DefaultInterval = 5

var (
	ErrIncomplete = errors.New("weather reply is missing a field")
	ErrNotString  = errors.New("weather field is not a string")
)

// Value is a single dictionary entry. Exactly one of its fields is meaningful,
// as reported by IsString.
type Value struct {
	str   string
	u8    uint8
	isStr bool
}

// String returns a string Value.
func String(s string) Value { return Value{str: s, isStr: true} }

// Uint8 returns a single-byte Value.
func Uint8(b uint8) Value { return Value{u8: b} }

func (v Value) IsString() bool { return v.isStr }
func (v Value) Uint8() uint8   { return v.u8 }

func (v Value) String() string {
	if v.isStr {
		return v.str
	}
	return fmt.Sprintf("%d", v.u8)
}

// Dict is a key-indexed message dictionary as exchanged with the companion.
type Dict map[Key]Value

func (d Dict) String() string {
	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if 0 < i {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %q", k, d[Key(k)].String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Request returns the outbound dictionary asking the companion for a report.
func Request() Dict {
	return Dict{KeyRequest: Uint8(0)}
}

// Due reports whether a request should be sent at the given reading, which is
// the case on every minute divisible by interval. A non-positive interval
// selects DefaultInterval.
func Due(w dectime.WallClock, interval int) bool {
	if 0 >= interval {
		interval = DefaultInterval
	}
	return 0 == w.Minute%interval
}

// Report is a parsed weather reply.
type Report struct {
	Temperature string
	Conditions  string
}

// Parse extracts a Report from an inbound dictionary. Both fields must be
// present; otherwise ErrIncomplete is returned and the caller should keep
// showing its previous report. Field text is truncated to its maximum length.
func Parse(d Dict) (Report, error) {
	temp, okTemp := d[KeyTemperature]
	cond, okCond := d[KeyConditions]
	if !okTemp || !okCond {
		return Report{}, ErrIncomplete
	}
	if !temp.IsString() || !cond.IsString() {
		return Report{}, ErrNotString
	}
	return Report{
		Temperature: Truncate(temp.str, MaxTemperature),
		Conditions:  Truncate(cond.str, MaxConditions),
	}, nil
}

// String formats the report as "<temperature>, <conditions>", truncated to
// MaxReport bytes.
func (r Report) String() string {
	return Truncate(r.Temperature+", "+r.Conditions, MaxReport)
}

// Truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
