package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"default", false, false},
		{"debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&buf, tt.debug)

			logger.Debug("menu closed")
			logger.Warn("unknown key")
			_ = logger.Sync()

			out := buf.String()
			if got := strings.Contains(out, "menu closed"); got != tt.wantDebug {
				t.Errorf("debug line written = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "unknown key") {
				t.Errorf("warning missing:\n%s", out)
			}
			if !strings.Contains(out, `"pid"`) {
				t.Errorf("pid field missing:\n%s", out)
			}
		})
	}
}

func TestNew(t *testing.T) {
	if logger := New(false); logger == nil {
		t.Fatal("New() returned nil logger")
	}
}
