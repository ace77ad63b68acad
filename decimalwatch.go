package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/ardnew/decimalwatch/config"
	"github.com/ardnew/decimalwatch/dectime"
	"github.com/ardnew/decimalwatch/display"
	"github.com/ardnew/decimalwatch/face"
	"github.com/ardnew/decimalwatch/run"
	"github.com/ardnew/decimalwatch/weather"
)

type cli struct {
	Config  string `short:"c" type:"existingfile" help:"YAML configuration file."`
	Mode    string `short:"m" help:"Hand dial (standard or decimal); overrides the configuration."`
	At      string `placeholder:"HH:MM:SS" help:"Paint a single tick at this time of day and exit."`
	Once    bool   `help:"Paint a single tick at the current time and exit."`
	Preview bool   `short:"p" help:"Print the display buffer after every paint."`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("decimalwatch"),
		kong.Description("Analog watchface with a decimal time readout."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(args.run(os.Stdout))
}

func (c *cli) run(out io.Writer) error {
	cfg := config.Default()
	if "" != c.Config {
		var err error
		if cfg, err = config.Load(c.Config); nil != err {
			return err
		}
	}
	if "" != c.Mode {
		mode, err := dectime.ParseMode(c.Mode)
		if nil != err {
			return errors.Wrap(err, "--mode")
		}
		cfg.Mode = mode
	}
	loc, err := cfg.Location()
	if nil != err {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})

	buf := display.NewBuffer(cfg.Display.Width, cfg.Display.Height)
	disp, err := display.New(buf, display.Config{})
	if nil != err {
		return err
	}

	companion := &weather.Loopback{Report: cfg.Report()}
	watch := face.New(
		&console{disp: disp, buf: buf, out: out, preview: c.Preview},
		companion,
		face.Config{
			Mode:     cfg.Mode,
			Interval: cfg.Weather.Interval,
			Logger:   logger,
		})
	companion.Deliver = watch.OnMessageReceived

	if "" != c.At || c.Once {
		at, err := c.instant(time.Now().In(loc))
		if nil != err {
			return err
		}
		watch.OnTick(at)
		return nil
	}

	sig, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = run.Run(sig, watch, run.Config{Location: loc, Logger: logger})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// instant returns the tick time requested with --at on the day of now, or now.
func (c *cli) instant(now time.Time) (time.Time, error) {
	if "" == c.At {
		return now, nil
	}
	p, err := time.Parse(time.TimeOnly, c.At)
	if nil != err {
		return time.Time{}, errors.Wrap(err, "--at")
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		p.Hour(), p.Minute(), p.Second(), 0, now.Location()), nil
}

// console paints frames into the display buffer and echoes them to out.
type console struct {
	disp    *display.Display
	buf     *display.Buffer
	out     io.Writer
	preview bool
}

func (c *console) Render(f face.Frame) error {
	if err := c.disp.Render(f); nil != err {
		return err
	}
	_, err := fmt.Fprintf(c.out, "%s %s  %-*s [%s] hands %.3f/%.3f/%.3f\n",
		f.Decimal, f.Standard, face.MaxWeatherText, f.Weather, f.Mode,
		f.Angles.Hour, f.Angles.Minute, f.Angles.Second)
	if nil == err && c.preview {
		_, err = io.WriteString(c.out, c.buf.String())
	}
	return err
}
