package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", &buf)
	if err != nil {
		t.Fatal(err)
	}

	log.Info("hidden")
	log.WithField("run", "classic").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "run=classic") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	log := Discard()
	if err := SetLevel(log, ""); err != nil || log.GetLevel() != logrus.InfoLevel {
		t.Errorf("empty level should mean info, got %v (%v)", log.GetLevel(), err)
	}
	if err := SetLevel(log, "debug"); err != nil || log.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug, got %v (%v)", log.GetLevel(), err)
	}
	if err := SetLevel(log, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
