package model_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/decimalwatch/model"
)

func TestChangedFlag(t *testing.T) {
	m := model.New("Loading...")

	changed, data := m.Get()
	assert.True(t, changed, "new model should report changed")
	assert.Equal(t, "Loading...", data.Weather)
	assert.Equal(t, model.StatusLoading, data.Status)
	assert.Equal(t, -1, data.Requested)

	changed, _ = m.Get()
	assert.False(t, changed, "Get should clear the changed flag")

	m.Mod(func(d *model.Data) { d.Requested = 600 })
	changed, data = m.Get()
	assert.False(t, changed, "Mod should not set the changed flag")
	assert.Equal(t, 600, data.Requested)

	m.Set(func(d *model.Data) { d.Weather, d.Status = "1C, Snow", model.StatusReady })
	assert.Equal(t, "1C, Snow", m.Peek().Weather)
	changed, _ = m.Get()
	assert.True(t, changed)
}

func TestConcurrentAccess(t *testing.T) {
	m := model.New("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Mod(func(d *model.Data) { d.Requested++ })
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 799, m.Peek().Requested)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loading", model.StatusLoading.String())
	assert.Equal(t, "ready", model.StatusReady.String())
	assert.Equal(t, "stale", model.StatusStale.String())
	assert.Equal(t, "unknown", model.Status(42).String())
}
