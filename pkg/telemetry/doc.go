// Package telemetry records Prometheus metrics and OpenTelemetry spans for
// tooltip renders, live-update traffic and snapshot uploads.
//
// Metrics (namespace "tooltip" by default):
//   - tooltip_renders_total{format,status}
//   - tooltip_render_duration_seconds{format}
//   - tooltip_render_errors_total{code}
//   - tooltip_patches_sent_total
//   - tooltip_live_clients
//   - tooltip_snapshots_total{store,status}
//
// Spans use the global tracer provider. Configure it in main before
// rendering:
//
//	otel.SetTracerProvider(tp)
//	rec := telemetry.New(telemetry.WithRegistry(reg))
//	info, err := rec.Render(ctx, content, container)
package telemetry
