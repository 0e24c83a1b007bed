package telemetry

import (
	"os"
	"testing"
)

func TestConfigureHoneycomb(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-honeycomb-team=${HONEYCOMB_TEST_API_KEY}")
	t.Setenv("HONEYCOMB_TEST_API_KEY", "abc123")
	t.Setenv("HONEYCOMB_TEST_DATASET", "")

	ConfigureHoneycomb("TEST", "caves")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	want := "x-honeycomb-team=abc123,x-honeycomb-dataset=caves"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestConfigureHoneycombDataset(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_TEST_API_KEY", "abc123")
	t.Setenv("HONEYCOMB_TEST_DATASET", "staging")

	ConfigureHoneycomb("TEST", "caves")

	want := "x-honeycomb-team=abc123,x-honeycomb-dataset=staging"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestConfigureHoneycombWithoutKey(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "untouched")
	t.Setenv("HONEYCOMB_TEST_API_KEY", "")

	ConfigureHoneycomb("TEST", "caves")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "untouched" {
		t.Errorf("headers = %q, want them left alone", got)
	}
}

func TestTracerName(t *testing.T) {
	if Tracer("world") == nil {
		t.Error("Tracer() returned nil")
	}
}
