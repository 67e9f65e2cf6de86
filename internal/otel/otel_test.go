package otel

import (
	"context"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{name: "empty", raw: "", want: map[string]string{}},
		{name: "single", raw: "Authorization=Basic abc", want: map[string]string{"Authorization": "Basic abc"}},
		{name: "multiple with spaces", raw: " a=1 , b = 2 ", want: map[string]string{"a": "1", "b": "2"}},
		{name: "value with equals", raw: "k=v=w", want: map[string]string{"k": "v=w"}},
		{name: "missing key skipped", raw: "=v,x=y", want: map[string]string{"x": "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseHeaders(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parseHeaders(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("header %q: got %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestInit_NoEndpointIsNoop(t *testing.T) {
	ctx := context.Background()
	tel, err := Init(ctx, OTELConfig{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer tel.Shutdown(ctx)

	if tel.Enabled() {
		t.Error("expected telemetry to be disabled without an endpoint")
	}
	if tel.Tracer == nil || tel.Metrics == nil {
		t.Fatal("expected tracer and metrics even without an endpoint")
	}
	tel.Metrics.RecordReconciliation(ctx, 3)
	tel.Metrics.RecordCommand(ctx, "dump")
}

func TestInit_InvalidEndpoint(t *testing.T) {
	if _, err := Init(context.Background(), OTELConfig{Endpoint: "http://[::1"}); err == nil {
		t.Error("expected error for invalid endpoint URL")
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.RecordReconciliation(ctx, 1)
	m.RecordFullCapture(ctx)
	m.RecordCommand(ctx, "write")
	m.RecordCommandDropped(ctx, "write")
	m.RecordRejected(ctx, "malformed")
}
