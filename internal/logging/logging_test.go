package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/damedic/fhir-codec-go/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&config.Config{Env: "production", LogLevel: "info"}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "a.json").Msg("decoded")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if line["level"] != "info" || line["message"] != "decoded" || line["file"] != "a.json" {
		t.Errorf("unexpected log line %v", line)
	}
}

func TestNew_Development(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&config.Config{Env: "development", LogLevel: "debug"}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug().Msg("visible")
	if out := buf.String(); !strings.Contains(out, "visible") || strings.HasPrefix(out, "{") {
		t.Errorf("expected console output, got %q", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&config.Config{LogLevel: "loud"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid level")
	}
}
