package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/taskbench/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" info ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"Error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: slog.LevelWarn, Output: &buf})
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "task", "dijkstra")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "task=dijkstra")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Format: "JSON", Output: &buf})
	require.NoError(t, err)
	log.Info("run", "iterations", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "run", rec["msg"])
	require.Equal(t, float64(3), rec["iterations"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml"})
	require.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	require.NotNil(t, log)
	log.Error("dropped")
}
