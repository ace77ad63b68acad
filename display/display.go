// Package display paints watchface frames onto any TinyGo display device.
package display

import (
	"errors"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"

	"github.com/ardnew/decimalwatch/dectime"
	"github.com/ardnew/decimalwatch/face"
	"github.com/ardnew/decimalwatch/model"
)

// Default constants for Display configuration.
const (
	DefaultWidth  = 144 // px
	DefaultHeight = 168 // px
	StaleMarker   = 4   // px, side of the stale weather square
)

var (
	ErrNoDevice     = errors.New("no display device")
	ErrEmptyDisplay = errors.New("display has zero size")
)

// Config selects the colors used to paint a frame. Zero colors select the
// white-on-black defaults.
type Config struct {
	Background color.RGBA
	Foreground color.RGBA
	Second     color.RGBA // second hand
	Font       *tinyfont.Font
}

// Display wraps a drivers.Displayer and implements face.Renderer.
type Display struct {
	dev    drivers.Displayer
	config Config
}

var _ face.Renderer = (*Display)(nil)

// New returns a new Display painting onto dev with given configuration.
// This method will always return a nil Display or a nil error. It will never
// return nil or non-nil for both Display and error.
func New(dev drivers.Displayer, config Config) (*Display, error) {
	if nil == dev {
		return nil, ErrNoDevice
	}
	if w, h := dev.Size(); 0 >= w || 0 >= h {
		return nil, ErrEmptyDisplay
	}
	black := color.RGBA{}
	if black == config.Background && black == config.Foreground {
		config.Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
		config.Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	if black == config.Second {
		config.Second = config.Foreground
	}
	if nil == config.Font {
		config.Font = &tinyfont.TomThumb
	}
	return &Display{dev: dev, config: config}, nil
}

// Render repaints the whole face. Every frame redraws the entire display so
// that no stale hand pixels are left behind.
func (d *Display) Render(f face.Frame) error {
	width, height := d.dev.Size()
	d.fillRect(0, 0, width, height, d.config.Background)

	cx, cy := width/2, height/2
	radius := cx
	if cy < radius {
		radius = cy
	}
	radius -= 2

	d.drawMarks(cx, cy, radius, f.Mode)

	// weather string centered in the upper third
	d.writeCentered(cx, height/4, f.Weather, d.config.Foreground)
	if model.StatusStale == f.Status {
		d.fillRect(1, 1, StaleMarker, StaleMarker, d.config.Foreground)
	}

	// decimal and standard readouts side by side in the lower third
	const gap = 4
	dw := d.lineWidth(f.Decimal)
	sw := d.lineWidth(f.Standard)
	left := cx - (dw+gap+sw)/2
	row := height*2/3 + 6
	d.writeLine(left, row, f.Decimal, d.config.Foreground)
	d.writeLine(left+dw+gap, row, f.Standard, d.config.Foreground)

	// hands on top of the text, as on the watch
	hx, hy := handTip(cx, cy, radius*5/10, f.Angles.Hour)
	mx, my := handTip(cx, cy, radius*8/10, f.Angles.Minute)
	sx, sy := handTip(cx, cy, radius, f.Angles.Second)
	tinydraw.Line(d.dev, cx, cy, hx, hy, d.config.Foreground)
	tinydraw.Line(d.dev, cx, cy, mx, my, d.config.Foreground)
	tinydraw.Line(d.dev, cx, cy, sx, sy, d.config.Second)

	// dot in the middle
	d.fillRect(cx-1, cy-1, 3, 3, d.config.Background)

	return d.dev.Display()
}

// drawMarks draws one tick mark per hour of the selected dial.
func (d *Display) drawMarks(cx, cy, radius int16, mode dectime.Mode) {
	marks := 12
	if dectime.ModeDecimal == mode {
		marks = 10
	}
	inner := radius - radius/8
	for i := 0; i < marks; i++ {
		a := float64(i) / float64(marks)
		x0, y0 := handTip(cx, cy, inner, a)
		x1, y1 := handTip(cx, cy, radius, a)
		tinydraw.Line(d.dev, x0, y0, x1, y1, d.config.Foreground)
	}
}

// handTip returns the end point of a hand of given length rotated by angle,
// a fraction of a full clockwise turn from 12 o'clock.
func handTip(cx, cy, length int16, angle float64) (x, y int16) {
	rad := 2 * math.Pi * angle
	x = cx + int16(math.Round(math.Sin(rad)*float64(length)))
	y = cy - int16(math.Round(math.Cos(rad)*float64(length)))
	return
}

func (d *Display) lineWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(d.config.Font, s)
	return int16(outbox)
}

func (d *Display) writeLine(x, y int16, s string, c color.RGBA) {
	if "" != s {
		tinyfont.WriteLine(d.dev, d.config.Font, x, y, s, c)
	}
}

func (d *Display) writeCentered(cx, y int16, s string, c color.RGBA) {
	d.writeLine(cx-d.lineWidth(s)/2, y, s, c)
}

func (d *Display) clipRect(x, y, w, h int16) (bool, int16, int16, int16, int16) {
	// normalize width/height to be positive
	if w < 0 {
		x, w = x+w, -w // adjust x by w, change sign of w
	}
	if h < 0 {
		y, h = y+h, -h // adjust y by h, change sign of h
	}
	// ensure origin is within bounds
	sx, sy := d.dev.Size()
	if x < 0 {
		x, w = 0, w+x // clip x to origin, adjust w by x
	} else if x >= sx {
		return false, 0, 0, 0, 0 // beyond screen bounds
	}
	if y < 0 {
		y, h = 0, h+y // clip y to origin, adjust h by y
	} else if y >= sy {
		return false, 0, 0, 0, 0 // beyond screen bounds
	}
	// ensure rect bounds is within screen bounds
	if x+w >= sx {
		w = sx - x // clip w to screen width
	}
	if y+h >= sy {
		h = sy - y // clip h to screen height
	}
	return w > 0 && h > 0, x, y, w, h
}

func (d *Display) fillRect(x, y, w, h int16, c color.RGBA) {
	var ok bool
	if ok, x, y, w, h = d.clipRect(x, y, w, h); ok {
		for row := y; row < y+h; row++ {
			for col := x; col < x+w; col++ {
				d.dev.SetPixel(col, row, c)
			}
		}
	}
}
