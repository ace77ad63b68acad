// Package face implements the watchface: the callbacks a host runtime invokes
// on every timer tick and on every inbound or outbound message, and the Frame
// it hands to a Renderer in response.
package face

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ardnew/decimalwatch/dectime"
	"github.com/ardnew/decimalwatch/model"
	"github.com/ardnew/decimalwatch/weather"
)

// Maximum lengths of the text fields of a Frame.
const (
	MaxDecimalText  = 5 // "HHMM"
	MaxStandardText = 6 // "(HHMM)"
	MaxWeatherText  = weather.MaxReport
)

// DefaultPlaceholder is shown in place of the weather until a report arrives.
const DefaultPlaceholder = "Loading..."

// Handler is the set of callbacks a host runtime dispatches to a watchface.
// Every call is synchronous and short-lived.
type Handler interface {
	OnTick(now time.Time)
	OnMessageReceived(d weather.Dict)
	OnMessageDropped(reason string)
	OnSendFailed(reason string)
	OnSent()
}

// Renderer draws a Frame. Implementations own any layer or buffer state.
type Renderer interface {
	Render(Frame) error
}

// Frame is everything a Renderer needs to paint the face once.
type Frame struct {
	Mode     dectime.Mode
	Angles   dectime.Angles
	Decimal  string // decimal HHMM
	Standard string // standard (HHMM)
	Weather  string
	Status   model.Status
}

// Config holds the watchface settings. Zero values select defaults.
type Config struct {
	Mode        dectime.Mode
	Interval    int    // minutes between weather requests
	Placeholder string // weather text until the first report
	Logger      *log.Logger
}

// Face implements Handler.
type Face struct {
	config Config
	model  *model.Model
	render Renderer
	outbox weather.Messenger
	log    *log.Logger
}

var _ Handler = (*Face)(nil)

// New returns a Face drawing to render and sending weather requests through
// outbox. Either collaborator may be nil, in which case that side effect is
// skipped.
func New(render Renderer, outbox weather.Messenger, config Config) *Face {
	if 0 >= config.Interval {
		config.Interval = weather.DefaultInterval
	}
	if "" == config.Placeholder {
		config.Placeholder = DefaultPlaceholder
	}
	logger := config.Logger
	if nil == logger {
		logger = log.Default()
	}
	return &Face{
		config: config,
		model:  model.New(fitText(config.Placeholder, MaxWeatherText)),
		render: render,
		outbox: outbox,
		log:    logger.WithPrefix("face"),
	}
}

// OnTick captures the wall clock reading of now, recomputes the decimal time
// and hand angles, repaints, and requests a weather report when one is due.
// The first tick always requests a report so the face does not wait for the
// next due minute after it opens.
func (f *Face) OnTick(now time.Time) {
	wall := dectime.FromTime(now)
	dec, err := dectime.ToDecimal(wall)
	if nil != err {
		f.log.Error("invalid clock reading", "err", err)
		return
	}
	angles, err := f.angles(wall, dec)
	if nil != err {
		f.log.Error("hand angles", "err", err)
		return
	}

	f.model.Set(func(d *model.Data) {
		d.Time, d.Decimal, d.Angles = wall, dec, angles
	})
	f.refresh()

	if f.pending() || weather.Due(wall, f.config.Interval) {
		f.request(wall)
	}
}

// angles returns the hand angles for the configured dial. The decimal dial is
// driven by the decimal reading, the standard dial by the wall clock.
func (f *Face) angles(wall dectime.WallClock, dec dectime.Decimal) (dectime.Angles, error) {
	if dectime.ModeDecimal == f.config.Mode {
		return dec.Angles(), nil
	}
	return dectime.HandAngles(wall, f.config.Mode)
}

// pending reports whether no weather request has been attempted yet.
func (f *Face) pending() bool {
	return 0 > f.model.Peek().Requested
}

// request sends at most one weather request per wall clock minute.
func (f *Face) request(wall dectime.WallClock) {
	if nil == f.outbox {
		return
	}
	minute := wall.Hour*60 + wall.Minute
	send := false
	f.model.Mod(func(d *model.Data) {
		if minute != d.Requested {
			d.Requested, send = minute, true
		}
	})
	if !send {
		return
	}
	if err := f.outbox.Send(weather.Request()); nil != err {
		f.OnSendFailed(err.Error())
		return
	}
	f.OnSent()
}

// OnMessageReceived updates the weather text from a companion reply. Replies
// missing either field are ignored and the last report stays on screen.
func (f *Face) OnMessageReceived(d weather.Dict) {
	report, err := weather.Parse(d)
	switch {
	case errors.Is(err, weather.ErrIncomplete):
		f.log.Debug("ignoring incomplete reply", "dict", d)
		return
	case nil != err:
		f.log.Warn("ignoring malformed reply", "dict", d, "err", err)
		return
	}
	f.model.Set(func(m *model.Data) {
		m.Weather, m.Status = fitText(report.String(), MaxWeatherText), model.StatusReady
	})
	f.refresh()
}

// OnMessageDropped logs the drop and keeps the last weather text.
func (f *Face) OnMessageDropped(reason string) {
	f.log.Error("message dropped", "reason", reason)
	f.markStale()
}

// OnSendFailed logs the failure and marks a shown report stale. The request
// is not retried before the next due minute.
func (f *Face) OnSendFailed(reason string) {
	f.log.Error("outbox send failed", "reason", reason)
	f.markStale()
}

// OnSent logs a successful outbound request.
func (f *Face) OnSent() {
	f.log.Info("outbox send success")
}

// markStale flags a shown report as out of date and repaints.
func (f *Face) markStale() {
	f.model.Set(func(d *model.Data) {
		if model.StatusReady == d.Status {
			d.Status = model.StatusStale
		}
	})
	f.refresh()
}

// Redraw repaints the face from its last state, as on a host redraw request.
func (f *Face) Redraw() {
	_, data := f.model.Get()
	f.paint(data)
}

// refresh repaints only if the state changed since the previous paint.
func (f *Face) refresh() {
	if changed, data := f.model.Get(); changed {
		f.paint(data)
	}
}

func (f *Face) paint(data model.Data) {
	if nil == f.render {
		return
	}
	if err := f.render.Render(f.frame(data)); nil != err {
		f.log.Error("render", "err", err)
	}
}

// Frame returns the Frame for the current state without repainting.
func (f *Face) Frame() Frame {
	return f.frame(f.model.Peek())
}

func (f *Face) frame(d model.Data) Frame {
	return Frame{
		Mode:     f.config.Mode,
		Angles:   d.Angles,
		Decimal:  fitText(d.Decimal.Clock(), MaxDecimalText),
		Standard: fitText("("+d.Time.Clock()+")", MaxStandardText),
		Weather:  fitText(d.Weather, MaxWeatherText),
		Status:   d.Status,
	}
}

// fitText bounds s to n bytes.
func fitText(s string, n int) string {
	return weather.Truncate(s, n)
}
