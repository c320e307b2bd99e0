package main

import (
	"bytes"
	"testing"

	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config"})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "10.0ms (100Hz)")
	assert.Contains(t, out, "[10 11 10 11] ticks per phase, 42 per cycle")
	assert.Contains(t, out, "foot BL:   x=-0.100 y=+0.090")
}

func TestNewController(t *testing.T) {
	cfg := config.Default()
	c := newController(cfg)
	state := quadruped.NewState(cfg.DefaultStance(), cfg.DefaultZRef)

	require.NoError(t, c.Run(state, quadruped.Command{ActivateEvent: true, Height: cfg.DefaultZRef}))
	assert.Equal(t, quadruped.Rest, state.BehaviorState)
	assert.NotEqual(t, quadruped.JointAngles{}, state.JointAngles)
}
