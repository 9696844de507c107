// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
)

func clearOTelEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OTEL_SERVICE_NAME",
		"OTEL_SERVICE_VERSION",
		"OTEL_EXPORTER_OTLP_PROTOCOL",
		"OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_EXPORTER_OTLP_INSECURE",
		"OTEL_TRACES_EXPORTER",
		"OTEL_TRACES_SAMPLE_RATIO",
		"OTEL_METRICS_EXPORTER",
		"OTEL_LOGS_EXPORTER",
		"OTEL_PROPAGATORS",
	} {
		t.Setenv(key, "")
	}
}

func TestOTelConfigFromEnvDefaults(t *testing.T) {
	clearOTelEnv(t)

	cfg := OTelConfigFromEnv()
	assert.Equal(t, OTelConfig{
		ServiceName:       constants.ServiceName,
		Protocol:          OTelProtocolGRPC,
		TracesExporter:    OTelExporterNone,
		TracesSampleRatio: 1.0,
		MetricsExporter:   OTelExporterNone,
		LogsExporter:      OTelExporterNone,
		Propagators:       OTelDefaultPropagators,
	}, cfg)
}

func TestOTelConfigFromEnvOverrides(t *testing.T) {
	clearOTelEnv(t)
	t.Setenv("OTEL_SERVICE_NAME", "donate-cli")
	t.Setenv("OTEL_SERVICE_VERSION", "0.3.0")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "http")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")
	t.Setenv("OTEL_TRACES_EXPORTER", "otlp")
	t.Setenv("OTEL_TRACES_SAMPLE_RATIO", "0.25")
	t.Setenv("OTEL_PROPAGATORS", "tracecontext")

	cfg := OTelConfigFromEnv()
	assert.Equal(t, "donate-cli", cfg.ServiceName)
	assert.Equal(t, "0.3.0", cfg.ServiceVersion)
	assert.Equal(t, OTelProtocolHTTP, cfg.Protocol)
	assert.Equal(t, "collector:4318", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, OTelExporterOTLP, cfg.TracesExporter)
	assert.Equal(t, 0.25, cfg.TracesSampleRatio)
	assert.Equal(t, OTelExporterNone, cfg.MetricsExporter)
	assert.Equal(t, "tracecontext", cfg.Propagators)
}

func TestOTelConfigSampleRatioBounds(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{"0", 0},
		{"0.75", 0.75},
		{"1", 1},
		{"-0.1", 1},
		{"1.01", 1},
		{"half", 1},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("OTEL_TRACES_SAMPLE_RATIO", tt.value)
			assert.Equal(t, tt.expected, OTelConfigFromEnv().TracesSampleRatio)
		})
	}
}

func TestOTelConfigInsecureIsLiteralTrue(t *testing.T) {
	for value, expected := range map[string]bool{"true": true, "TRUE": false, "1": false, "": false} {
		t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", value)
		assert.Equal(t, expected, OTelConfigFromEnv().Insecure, "value %q", value)
	}
}

func TestSetupOTelSDKDisabled(t *testing.T) {
	clearOTelEnv(t)
	ctx := context.Background()

	shutdown, err := SetupOTelSDK(ctx)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(ctx))
	assert.NoError(t, shutdown(ctx), "shutdown is idempotent")
}

func TestSetupOTelSDKZeroConfig(t *testing.T) {
	ctx := context.Background()

	shutdown, err := SetupOTelSDKWithConfig(ctx, OTelConfig{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(ctx))
}

func TestSetupOTelSDKWithTraceExporter(t *testing.T) {
	ctx := context.Background()

	shutdown, err := SetupOTelSDKWithConfig(ctx, OTelConfig{
		ServiceName:       "donate-test",
		Protocol:          OTelProtocolGRPC,
		Endpoint:          "127.0.0.1:4317",
		Insecure:          true,
		TracesExporter:    OTelExporterOTLP,
		TracesSampleRatio: 1,
		Propagators:       "tracecontext,baggage",
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	// No collector is listening; only setup is under test.
	_ = shutdown(ctx)
}

func TestSetupOTelSDKRejectsUnknownPropagator(t *testing.T) {
	ctx := context.Background()

	shutdown, err := SetupOTelSDKWithConfig(ctx, OTelConfig{Propagators: "b3"})
	require.Error(t, err)
	assert.NotNil(t, shutdown)
}

func TestNewResource(t *testing.T) {
	res, err := newResource(OTelConfig{ServiceName: "donate-test", ServiceVersion: "1.0.0"})
	require.NoError(t, err)

	values := map[string]string{}
	for _, attr := range res.Attributes() {
		values[string(attr.Key)] = attr.Value.Emit()
	}
	assert.Equal(t, "donate-test", values["service.name"])
	assert.Equal(t, "1.0.0", values["service.version"])
}

func TestNewPropagator(t *testing.T) {
	tests := []struct {
		name          string
		propagators   string
		expected      []string
		absent        []string
		expectedError bool
	}{
		{
			name:        "defaults",
			propagators: OTelDefaultPropagators,
			expected:    []string{"traceparent", "tracestate", "baggage", "uber-trace-id"},
		},
		{
			name:        "trace context only",
			propagators: "tracecontext",
			expected:    []string{"traceparent"},
			absent:      []string{"baggage", "uber-trace-id"},
		},
		{
			name:        "spaces tolerated",
			propagators: " baggage , jaeger ",
			expected:    []string{"baggage", "uber-trace-id"},
			absent:      []string{"traceparent"},
		},
		{
			name:        "empty",
			propagators: "",
			absent:      []string{"traceparent", "baggage", "uber-trace-id"},
		},
		{
			name:          "unsupported",
			propagators:   "tracecontext,zipkin",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prop, err := newPropagator(OTelConfig{Propagators: tt.propagators})
			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			fields := prop.Fields()
			for _, f := range tt.expected {
				assert.Contains(t, fields, f)
			}
			for _, f := range tt.absent {
				assert.NotContains(t, fields, f)
			}
		})
	}
}

func TestIsExporterEnabled(t *testing.T) {
	assert.True(t, isExporterEnabled(OTelExporterOTLP))
	assert.True(t, isExporterEnabled("console"))
	assert.False(t, isExporterEnabled(OTelExporterNone))
	assert.False(t, isExporterEnabled(""))
}

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		raw      string
		insecure bool
		want     string
	}{
		{"127.0.0.1:4317", true, "http://127.0.0.1:4317"},
		{"127.0.0.1:4317", false, "https://127.0.0.1:4317"},
		{"collector", true, "http://collector"},
		{"http://collector:4318", false, "http://collector:4318"},
		{"https://collector:4318/v1/traces", true, "https://collector:4318/v1/traces"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, endpointURL(tt.raw, tt.insecure), "raw %q insecure %t", tt.raw, tt.insecure)
	}
}
