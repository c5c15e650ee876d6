package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "zjnav"

// Dispatch modes recorded on the dispatches counter.
const (
	DispatchNative     = "native"
	DispatchKeystrokes = "keystrokes"
)

// Metrics holds all OTEL metric instruments for the router.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// Trigger counters
	Triggers        metric.Int64Counter
	TriggersDropped metric.Int64Counter

	// Probe counters
	ProbesIssued    metric.Int64Counter
	ProbesCompleted metric.Int64Counter

	// Dispatch counter (partitioned by mode: native, keystrokes)
	Dispatches metric.Int64Counter

	// Queue depth
	QueueDepth metric.Int64UpDownCounter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Triggers, err = meter.Int64Counter("triggers.total",
		metric.WithDescription("Trigger messages received, partitioned by command name"))
	if err != nil {
		return nil, err
	}

	m.TriggersDropped, err = meter.Int64Counter("triggers.dropped",
		metric.WithDescription("Trigger messages dropped for unrecognized name or direction"))
	if err != nil {
		return nil, err
	}

	m.ProbesIssued, err = meter.Int64Counter("probes.issued",
		metric.WithDescription("list-clients probes issued to the host"))
	if err != nil {
		return nil, err
	}

	m.ProbesCompleted, err = meter.Int64Counter("probes.completed",
		metric.WithDescription("Probe results received, partitioned by classification outcome"))
	if err != nil {
		return nil, err
	}

	m.Dispatches, err = meter.Int64Counter("dispatches.total",
		metric.WithDescription("Commands dispatched, partitioned by mode (native, keystrokes)"))
	if err != nil {
		return nil, err
	}

	m.QueueDepth, err = meter.Int64UpDownCounter("queue.depth",
		metric.WithDescription("Commands currently pending occupant classification"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordTrigger records a routed trigger.
func (m *Metrics) RecordTrigger(ctx context.Context, name string) {
	if m == nil {
		return
	}
	m.Triggers.Add(ctx, 1, metric.WithAttributes(attribute.String("command", name)))
	m.QueueDepth.Add(ctx, 1)
}

// RecordDropped records a dropped trigger.
func (m *Metrics) RecordDropped(ctx context.Context, name string) {
	if m == nil {
		return
	}
	m.TriggersDropped.Add(ctx, 1, metric.WithAttributes(attribute.String("command", name)))
}

// RecordProbeIssued records one probe issuance.
func (m *Metrics) RecordProbeIssued(ctx context.Context) {
	if m == nil {
		return
	}
	m.ProbesIssued.Add(ctx, 1)
}

// RecordProbeCompleted records one probe completion and whether an
// occupant was classified.
func (m *Metrics) RecordProbeCompleted(ctx context.Context, classified bool) {
	if m == nil {
		return
	}
	m.ProbesCompleted.Add(ctx, 1, metric.WithAttributes(attribute.Bool("classified", classified)))
}

// RecordDispatch records one dispatched command.
func (m *Metrics) RecordDispatch(ctx context.Context, mode, name string) {
	if m == nil {
		return
	}
	m.Dispatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("command", name),
	))
	m.QueueDepth.Add(ctx, -1)
}
