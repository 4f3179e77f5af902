package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_DefaultInfoLevel(t *testing.T) {
	logger := NewLogger(LogConfig{Writer: &bytes.Buffer{}})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestNewLogger_VerboseEnablesDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Verbose: true, Writer: &buf})
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger.Debug("verbose-msg")
	assert.Contains(t, buf.String(), "verbose-msg")
}

func TestNewLogger_TimestampDefaultOn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Writer: &buf})
	logger.Info("test")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestNewLogger_TimestampExplicitlyDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Timestamps: BoolPtr(false), Writer: &buf})
	logger.Info("hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestNewLogger_VerboseForcesTimestampsOn(t *testing.T) {
	cfg := LogConfig{Verbose: true, Timestamps: BoolPtr(false)}
	assert.True(t, cfg.timestamps())
}

func TestAppLogger_HasPrefix(t *testing.T) {
	base := NewLogger(LogConfig{Writer: &bytes.Buffer{}})
	appLog := AppLogger(base, "MyApp")
	assert.Contains(t, appLog.GetPrefix(), "MyApp")
	assert.Empty(t, base.GetPrefix(), "base logger must not be modified")
}

func TestAppLogger_InheritsLevel(t *testing.T) {
	base := NewLogger(LogConfig{Verbose: true, Writer: &bytes.Buffer{}})
	assert.Equal(t, log.DebugLevel, AppLogger(base, "MyApp").GetLevel())
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
