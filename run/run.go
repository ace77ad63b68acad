// Package run drives a watchface the way the device platform does: one tick
// on load, then one tick on every standard second boundary.
package run

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/ardnew/decimalwatch/face"
)

// Config holds the tick source settings. Zero values select defaults.
type Config struct {
	Clock    clockwork.Clock // defaults to the real clock
	Location *time.Location  // time zone of delivered ticks; defaults to time.Local
	Logger   *log.Logger
}

// Run ticks h until ctx is done, then returns ctx's error.
func Run(ctx context.Context, h face.Handler, config Config) error {
	if nil == config.Clock {
		config.Clock = clockwork.NewRealClock()
	}
	if nil == config.Location {
		config.Location = time.Local
	}
	if nil == config.Logger {
		config.Logger = log.Default()
	}
	clock, logger := config.Clock, config.Logger.WithPrefix("run")

	// initial paint, as when the face is first loaded
	now := clock.Now()
	h.OnTick(now.In(config.Location))

	// align subsequent ticks with the second boundary
	select {
	case <-ctx.Done():
		return ctx.Err()
	case now = <-clock.After(now.Truncate(time.Second).Add(time.Second).Sub(now)):
		h.OnTick(now.In(config.Location))
	}

	ticker := clock.NewTicker(time.Second)
	defer ticker.Stop()
	logger.Debug("ticking", "location", config.Location)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("stopped", "err", ctx.Err())
			return ctx.Err()
		case now = <-ticker.Chan():
			h.OnTick(now.In(config.Location))
		}
	}
}
