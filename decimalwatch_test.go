package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/decimalwatch/dectime"
)

func TestParseFlags(t *testing.T) {
	var args cli
	parser, err := kong.New(&args)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--at", "07:30:00", "-m", "decimal", "-p"})
	require.NoError(t, err)
	assert.Equal(t, "07:30:00", args.At)
	assert.Equal(t, "decimal", args.Mode)
	assert.True(t, args.Preview)
	assert.False(t, args.Once)
}

func TestRunAt(t *testing.T) {
	var out bytes.Buffer
	c := &cli{At: "12:00:00", Mode: "standard"}
	require.NoError(t, c.run(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, "tick paint then weather paint")
	assert.True(t, strings.HasPrefix(lines[0], "0500 (1200)"), lines[0])
	assert.Contains(t, lines[0], "Loading...")
	assert.Contains(t, lines[0], "[standard]")
	assert.Contains(t, lines[1], "--, No companion")
}

func TestRunPreviewWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: decimal\ntimezone: UTC\ndisplay: {width: 40, height: 40}\n"), 0o600))

	var out bytes.Buffer
	c := &cli{Config: path, At: "06:01:00", Preview: true}
	require.NoError(t, c.run(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "0250 (0601)"), lines[0])
	assert.Contains(t, out.String(), "--, No companion", "first tick requests weather")
	assert.Contains(t, out.String(), "#", "preview prints lit pixels")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, (&cli{Mode: "metric", Once: true}).run(&out))
	assert.Error(t, (&cli{At: "25:00"}).run(&out))
	assert.Error(t, (&cli{Config: filepath.Join(t.TempDir(), "none.yaml")}).run(&out))
	assert.Empty(t, out.String())

	err := (&cli{Mode: "metric", Once: true}).run(&out)
	assert.ErrorIs(t, err, dectime.ErrUnknownMode)
	assert.True(t, strings.HasPrefix(err.Error(), "--mode: "), err.Error())
}

func TestInstant(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	now := time.Date(2026, time.October, 18, 9, 15, 42, 5, loc)

	got, err := (&cli{}).instant(now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = (&cli{At: "23:59:59"}).instant(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 18, 23, 59, 59, 0, loc), got)

	_, err = (&cli{At: "7:30"}).instant(now)
	var perr *time.ParseError
	require.ErrorAs(t, err, &perr)
	assert.True(t, strings.HasPrefix(err.Error(), "--at: "), err.Error())
}
