package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    logrus.Level
		wantErr bool
	}{
		{"debug", logrus.DebugLevel, false},
		{"INFO", logrus.InfoLevel, false},
		{"", logrus.InfoLevel, false},
		{"warning", logrus.WarnLevel, false},
		{"warn", logrus.WarnLevel, false},
		{"error", logrus.ErrorLevel, false},
		{"verbose", logrus.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.WarnLevel)

	l.Info("info %d", 2)
	l.Warn("slot %s is full", "14:00")
	l.Error("boom: %v", "err")

	out := buf.String()
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "slot 14:00 is full")
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "boom: err")
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)
	code := 0
	l.log.ExitFunc = func(c int) { code = c }

	l.Fatal("cannot start: %s", "port busy")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "level=fatal")
	assert.Contains(t, buf.String(), "cannot start: port busy")
}

func TestNew_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	l, err := New(path, "warn")
	require.NoError(t, err)
	l.Warn("written to file")
	l.Info("filtered out")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=warning")
	assert.Contains(t, string(data), "written to file")
	assert.NotContains(t, string(data), "filtered out")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}
