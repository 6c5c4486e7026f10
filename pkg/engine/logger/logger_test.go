package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNopBeforeInit(t *testing.T) {
	Reset()
	// must not panic without Init
	Info("nothing configured", zap.Int("width", 5))
	Sugar.Debugf("still nothing %d", 1)
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "haex.log")

	if err := InitWithFileConfig("debug", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Reset()

	Debug("level generated", zap.Int("width", 7), zap.Int("height", 7))
	Sugar.Infof("dead ends: %d", 4)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	for _, want := range []string{"DEBUG", "level generated", "\"width\": 7", "dead ends: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "haex.log")

	if err := InitWithFileConfig("warn", FileConfig{Path: logFile}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Reset()

	Info("hidden")
	Warn("shown")
	Sync()

	data, _ := os.ReadFile(logFile)
	if strings.Contains(string(data), "hidden") {
		t.Error("info message written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn message missing")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
