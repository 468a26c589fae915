package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithSink_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithSink(zapcore.AddSync(&buf), tt.verbose)

			log.Debug("debug entry")
			log.Info("dataset loaded", zap.Int("rows", 42))
			_ = log.Sync()

			out := buf.String()
			if !strings.Contains(out, "dataset loaded") || !strings.Contains(out, "rows") {
				t.Errorf("info entry missing from output:\n%s", out)
			}
			if got := strings.Contains(out, "debug entry"); got != tt.wantDebug {
				t.Errorf("debug entry present = %v, want %v\n%s", got, tt.wantDebug, out)
			}
		})
	}
}
