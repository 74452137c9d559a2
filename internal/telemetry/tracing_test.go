package telemetry_test

import (
	"testing"

	"github.com/Chimelu/hafak-surgicals-backend/internal/config"
	"github.com/Chimelu/hafak-surgicals-backend/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup(t *testing.T) {
	t.Run("Success - without exporter", func(t *testing.T) {
		shutdown, err := telemetry.Setup(t.Context(), config.OtelConfig{ServiceName: "hafak-catalog-test", SamplerRatio: 1})
		require.NoError(t, err)
		require.NotNil(t, shutdown)

		_, span := otel.Tracer("test").Start(t.Context(), "operation")
		assert.True(t, span.SpanContext().IsValid())
		assert.True(t, span.SpanContext().IsSampled())
		span.End()

		assert.NoError(t, shutdown(t.Context()))
	})

	t.Run("Success - zero ratio drops spans", func(t *testing.T) {
		shutdown, err := telemetry.Setup(t.Context(), config.OtelConfig{ServiceName: "hafak-catalog-test", SamplerRatio: 0})
		require.NoError(t, err)

		_, span := otel.Tracer("test").Start(t.Context(), "operation")
		assert.False(t, span.SpanContext().IsSampled())
		span.End()

		assert.NoError(t, shutdown(t.Context()))
	})

	t.Run("Success - with exporter endpoint", func(t *testing.T) {
		shutdown, err := telemetry.Setup(t.Context(), config.OtelConfig{
			ServiceName:      "hafak-catalog-test",
			ExporterEndpoint: "http://127.0.0.1:4318",
			SamplerRatio:     1,
		})
		require.NoError(t, err)
		assert.NotNil(t, shutdown)
	})
}
