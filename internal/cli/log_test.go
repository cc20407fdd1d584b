package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   LogInfo,
			logFunc: func(l *log.Logger) { l.Info("loaded roster") },
			wantLog: true,
		},
		{
			name:    "omission at info level",
			level:   LogInfo,
			logFunc: func(l *log.Logger) { l.Debug("omitted", "record", "ops-zone3") },
			wantLog: false,
		},
		{
			name:    "omission at debug level",
			level:   LogDebug,
			logFunc: func(l *log.Logger) { l.Debug("omitted", "record", "ops-zone3") },
			wantLog: true,
		},
		{
			name:    "warning at info level",
			level:   LogInfo,
			logFunc: func(l *log.Logger) { l.Warn("cache write failed") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)
	logger.Info("built chart", "nodes", 10)

	out := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(out) {
		t.Errorf("log line %q should start with an HH:MM:SS.ms timestamp", out)
	}
	if !strings.Contains(out, "nodes=10") {
		t.Errorf("log line %q should carry structured fields", out)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("debug output at info level")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("SetLogLevel(LogDebug) should enable debug output")
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("Generated org_chart.html")

	out := buf.String()
	if !strings.Contains(out, "Generated org_chart.html (") {
		t.Errorf("progress.done() output %q should contain message and duration", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, LogInfo)
	ctx := withLogger(context.Background(), custom)

	retrieved := loggerFromContext(ctx)
	if retrieved != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	retrieved.Info("test")
	if buf.Len() == 0 {
		t.Error("custom logger should write to buffer")
	}
}
