package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	SetNoColor(true)
	SetLevel(LevelInfo)
	EnableLogs()

	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetNoColor(false)
		SetLevel(LevelInfo)
		EnableLogs()
	})

	return &out, &errOut
}

func TestLevels(t *testing.T) {
	out, errOut := captureLogs(t)

	Debugf("hidden %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug message should not be written at info level, got %q", out.String())
	}
	if !strings.Contains(out.String(), "[INF] info 2") {
		t.Errorf("expected info line, got %q", out.String())
	}
	if !strings.Contains(out.String(), "[WRN] warn 3") {
		t.Errorf("expected warn line, got %q", out.String())
	}
	if strings.Contains(out.String(), "error 4") {
		t.Errorf("error must not go to stdout")
	}
	if !strings.Contains(errOut.String(), "[ERR] error 4") {
		t.Errorf("expected error line on stderr, got %q", errOut.String())
	}
}

func TestSetVerbose(t *testing.T) {
	out, _ := captureLogs(t)

	SetVerbose(true)
	if !IsVerbose() {
		t.Fatal("expected verbose mode")
	}
	Debugf("trace")
	if !strings.Contains(out.String(), "[DBG] trace") {
		t.Errorf("expected debug line, got %q", out.String())
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose mode to be off")
	}
}

func TestDisableLogs(t *testing.T) {
	out, errOut := captureLogs(t)

	DisableLogs()
	if !IsDisabled() {
		t.Fatal("expected logs to be disabled")
	}
	Infof("nothing")
	Errorf("nothing")

	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("expected no output, got %q / %q", out.String(), errOut.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
