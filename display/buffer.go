package display

import (
	"image/color"
	"strings"
	"sync"

	"tinygo.org/x/drivers"
)

// Buffer is an in-memory drivers.Displayer. It stands in for a panel when the
// face runs off-device, and renders itself as text for previews.
type Buffer struct {
	lock    sync.Mutex
	width   int16
	height  int16
	pix     []color.RGBA
	flushed int
}

var _ drivers.Displayer = (*Buffer)(nil)

// NewBuffer returns a cleared Buffer of the given size. Non-positive
// dimensions select DefaultWidth and DefaultHeight.
func NewBuffer(width, height int16) *Buffer {
	if 0 >= width {
		width = DefaultWidth
	}
	if 0 >= height {
		height = DefaultHeight
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]color.RGBA, int(width)*int(height)),
	}
}

// Size returns the buffer dimensions in pixels.
func (b *Buffer) Size() (x, y int16) {
	return b.width, b.height
}

// SetPixel sets the pixel at x, y. Points outside the buffer are ignored.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.lock.Lock()
	b.pix[int(y)*int(b.width)+int(x)] = c
	b.lock.Unlock()
}

// Display counts a flush; the buffer has no panel to push to.
func (b *Buffer) Display() error {
	b.lock.Lock()
	b.flushed++
	b.lock.Unlock()
	return nil
}

// At returns the pixel at x, y, or the zero color outside the buffer.
func (b *Buffer) At(x, y int16) color.RGBA {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return color.RGBA{}
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.pix[int(y)*int(b.width)+int(x)]
}

// Flushed returns the number of times Display has been called.
func (b *Buffer) Flushed() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.flushed
}

// String renders the buffer one character per pixel, '#' for lit pixels and
// ' ' for dark ones, with trailing blanks trimmed from each row.
func (b *Buffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	var sb strings.Builder
	row := make([]byte, b.width)
	for y := 0; y < int(b.height); y++ {
		for x := 0; x < int(b.width); x++ {
			if lit(b.pix[y*int(b.width)+x]) {
				row[x] = '#'
			} else {
				row[x] = ' '
			}
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func lit(c color.RGBA) bool {
	return int(c.R)+int(c.G)+int(c.B) > 3*0x7F
}
