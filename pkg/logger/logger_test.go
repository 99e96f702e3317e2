package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warning", WARN},
		{" error ", ERROR},
		{"FATAL", FATAL},
		{"bogus", INFO},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, WARN)

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO message written at WARN level: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Errorf("expected WARN line, got %q", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("expected caller file in output, got %q", out)
	}

	l.SetLevel(DEBUG)
	l.Debugf("now visible")
	if !strings.Contains(buf.String(), "[DEBUG] now visible") {
		t.Errorf("expected DEBUG line after SetLevel, got %q", buf.String())
	}
}
