// Package joinmetrics exports data-join statistics to Prometheus and
// OpenTelemetry.
//
// # Prometheus
//
// A Collector registers its metrics on construction and implements
// selection.Observer:
//
//	reg := prometheus.NewRegistry()
//	metrics := joinmetrics.NewCollector(joinmetrics.WithRegistry(reg))
//	selection.SelectAll(doc, "rect", selection.WithObserver(metrics)).Data(values)
//
// Metrics collected:
//   - vsel_joins_total: Counter of Data calls
//   - vsel_join_slots_total: Counter of slots by partition (update, enter, exit)
//   - vsel_join_values: Histogram of data length per join
//   - vsel_join_groups: Histogram of group count per join
//   - vsel_requests_total: Counter of service requests by endpoint and status
//   - vsel_request_duration_seconds: Histogram of request duration by endpoint
//
// # OpenTelemetry
//
// Tracing starts server spans from the global tracer provider and
// SpanObserver records each join as an event on the span found in a
// context:
//
//	ctx, span := tracing.Start(ctx, "vsel.join")
//	defer span.End()
//	obs := joinmetrics.SpanObserver(ctx)
package joinmetrics
