package dectime

import (
	"fmt"
	"strings"
)

// FullTurn is the rotation constant of the reference watch platform, where a
// full turn of a hand path is 0x10000 angle units.
const FullTurn int32 = 0x10000

// Mode selects the dial a set of hand angles is computed for.
type Mode uint8

// Constants defining each supported hand Mode.
const (
	ModeStandard Mode = iota
	ModeDecimal
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeDecimal:
		return "decimal"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode returns the Mode named by s, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "std":
		return ModeStandard, nil
	case "decimal", "dec":
		return ModeDecimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// UnmarshalText implements encoding.TextUnmarshaler so that a Mode can be read
// directly from configuration files and command-line flags.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if nil != err {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Angles holds hand rotations as fractions of a full turn in [0,1), where 0 is
// the 12 o'clock position and values grow clockwise.
type Angles struct {
	Second float64
	Minute float64
	Hour   float64
}

// Rotation scales each angle by fullTurn, yielding the integer rotations a
// host graphics API expects.
func (a Angles) Rotation(fullTurn int32) (second, minute, hour int32) {
	scale := func(f float64) int32 { return int32(f * float64(fullTurn)) }
	return scale(a.Second), scale(a.Minute), scale(a.Hour)
}

// HandAngles computes hand angles for w on the dial selected by mode.
//
// Standard mode is the familiar 12-hour dial. Decimal mode applies the decimal
// dial formulas (100 steps per second and minute hand revolution, 1000 per
// hour hand revolution) directly to the fields of w. For the angles of a
// decimal reading, see Decimal.Angles.
func HandAngles(w WallClock, mode Mode) (Angles, error) {
	if !w.Valid() {
		return Angles{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrOutOfRange, w.Hour, w.Minute, w.Second)
	}
	switch mode {
	case ModeStandard:
		return Angles{
			Second: float64(w.Second) / 60,
			Minute: float64(w.Minute) / 60,
			Hour:   (float64(w.Hour%12) + float64(w.Minute)/60) / 12,
		}, nil
	case ModeDecimal:
		return decimalAngles(w.Hour, w.Minute, w.Second), nil
	}
	return Angles{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

// Angles returns the hand angles of d on a decimal dial.
func (d Decimal) Angles() Angles {
	return decimalAngles(d.Hour, d.Minute, d.Second)
}

func decimalAngles(hour, minute, second int) Angles {
	return Angles{
		Second: float64(second) / 100,
		Minute: float64(minute) / 100,
		Hour:   float64((hour%10)*100+minute) / 1000,
	}
}
