package cli

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tc := range tests {
		log := NewLogger(LogConfig{Level: tc.level, NoColor: true})
		if got := log.GetLevel(); got != tc.want {
			t.Errorf("NewLogger(%q) level = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestLevelTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DEBUG", "[DBG]"},
		{"INFO", "[INF]"},
		{"WARN", "[WRN]"},
		{"ERROR", "[ERR]"},
		{"FATAL", "[FTL]"},
		{"TRACE", "[TRACE]"},
	}
	for _, tc := range tests {
		if got := levelTag(tc.in); got != tc.want {
			t.Errorf("levelTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
