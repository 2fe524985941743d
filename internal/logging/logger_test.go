package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fgeck/data-mirror/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		settings models.LogSettings
		want     zerolog.Level
	}{
		{"default", models.LogSettings{}, zerolog.WarnLevel},
		{"verbose", models.LogSettings{Verbose: true}, zerolog.DebugLevel},
		{"quiet", models.LogSettings{Quiet: true}, zerolog.ErrorLevel},
		{"quiet wins over verbose", models.LogSettings{Verbose: true, Quiet: true}, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.settings))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, models.LogSettings{Verbose: true, JSON: true})

	logger.Debug().Str("command", "egress").Msg("dispatching command")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "egress", entry["command"])
	assert.Equal(t, "dispatching command", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, models.LogSettings{Verbose: true})

	logger.Debug().Str("type", "mysql").Msg("dispatching command")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "dispatching command")
	assert.Contains(t, out, "type=mysql")
}

func TestNew_DefaultSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, models.LogSettings{})

	logger.Info().Msg("hidden")
	logger.Debug().Msg("hidden")

	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_QuietOnlyErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, models.LogSettings{Quiet: true})

	logger.Warn().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Error().Msg("boom")
	assert.Contains(t, buf.String(), "ERROR")
}
