package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_AllLogLevels(t *testing.T) {
	testCases := []struct {
		level         string
		expectedLevel zerolog.Level
		name          string
	}{
		{"debug", zerolog.DebugLevel, "debug"},
		{"info", zerolog.InfoLevel, "info"},
		{"WARN", zerolog.WarnLevel, "warn, case insensitive"},
		{"error", zerolog.ErrorLevel, "error"},
		{"", zerolog.InfoLevel, "empty defaults to info"},
		{"unknown", zerolog.InfoLevel, "unknown defaults to info"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			New(Config{Level: tc.level, Out: &bytes.Buffer{}})
			assert.Equal(t, tc.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_Output(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Out: &buf})

	l.Debug().Msg("hidden")
	l.Info().Str("file", "book.jsonl").Msg("book-decoded")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"book-decoded"`)
	assert.Contains(t, buf.String(), `"file":"book.jsonl"`)
}

func TestNew_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Pretty: true, Out: &buf})

	l.Warn().Msg("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestSetGlobalLogger(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	SetGlobalLogger(New(Config{Level: "info", Out: &buf}))
	log.Info().Msg("global message")

	assert.Contains(t, buf.String(), "global message")
}
