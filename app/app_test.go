package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppRunsSetupsOnce(t *testing.T) {
	var a App
	var calls []string

	a.AddSetup("gpu", func() error {
		calls = append(calls, "setup-gpu")
		return nil
	})
	a.AddSystem("render", func() error {
		calls = append(calls, "render")
		return nil
	})

	require.NoError(t, a.Frame())
	require.NoError(t, a.Frame())

	assert.Equal(t, []string{"setup-gpu", "render", "render"}, calls)
}

func TestAppExecutionOrder(t *testing.T) {
	var a App
	var calls []string

	for _, name := range []string{"time", "resize", "render"} {
		name := name
		a.AddSystem(name, func() error {
			calls = append(calls, name)
			return nil
		})
	}

	require.NoError(t, a.Frame())
	assert.Equal(t, []string{"time", "resize", "render"}, calls)
}

func TestAppSetupError(t *testing.T) {
	var a App
	boom := errors.New("boom")

	a.AddSetup("broken", func() error { return boom })

	var systemRan bool
	a.AddSystem("render", func() error {
		systemRan = true
		return nil
	})

	err := a.Frame()
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "setup broken")
	assert.False(t, systemRan)
}

func TestAppSystemErrorAbortsFrame(t *testing.T) {
	var a App
	boom := errors.New("boom")

	var after bool
	a.AddSystem("first", func() error { return boom })
	a.AddSystem("second", func() error {
		after = true
		return nil
	})

	err := a.Frame()
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "system first")
	assert.False(t, after)
}
