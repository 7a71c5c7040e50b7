package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)
	log.Info().Str("card", "VISA").Msg("statement created")

	out := buf.String()
	if !strings.Contains(out, `"card":"VISA"`) {
		t.Errorf("log output missing field: %s", out)
	}
	if !strings.Contains(out, "statement created") {
		t.Errorf("log output missing message: %s", out)
	}
	if !strings.Contains(out, `"time":`) {
		t.Errorf("log output missing timestamp: %s", out)
	}
}
