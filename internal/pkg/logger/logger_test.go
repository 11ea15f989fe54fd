package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFromSettings(t *testing.T) {
	cfg := FromSettings(" DEBUG ", "TEXT")
	assert.Equal(t, DebugLevel, cfg.Level)
	assert.True(t, cfg.Pretty)

	assert.False(t, FromSettings("info", "json").Pretty)
}

func TestConfigure_WritesJSONAtLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	out := &bytes.Buffer{}

	lgr := Configure(Config{Level: WarnLevel, Output: out})
	lgr.Info().Msg("hidden")
	lgr.Warn().Msg("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), `"message":"shown"`)

	tagged := Component("registry")
	tagged.Warn().Msg("tagged")
	assert.Contains(t, out.String(), `"component":"registry"`)
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	Configure(Config{Level: "verbose", Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
