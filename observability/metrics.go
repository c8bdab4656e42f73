package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/skillsenselab/singlekit/logger"
	"github.com/skillsenselab/singlekit/singleton"
)

// Metrics records singleton lifecycle events on OpenTelemetry
// instruments. Safe for concurrent use.
type Metrics struct {
	constructions        metric.Int64Counter
	constructionFailures metric.Int64Counter
	releases             metric.Int64Counter
	constructionDuration metric.Float64Histogram
}

var _ singleton.Recorder = (*Metrics)(nil)

// NewMetrics creates lifecycle instruments on the given meter.
func NewMetrics(meter metric.Meter) *Metrics {
	m := &Metrics{}
	var err error

	m.constructions, err = meter.Int64Counter("singlekit.constructions",
		metric.WithDescription("Successful singleton constructions"),
		metric.WithUnit("1"))
	if err != nil {
		logger.Warn("Failed to create constructions counter", logger.ErrorFields("metrics", err))
	}

	m.constructionFailures, err = meter.Int64Counter("singlekit.construction_failures",
		metric.WithDescription("Failed singleton construction attempts"),
		metric.WithUnit("1"))
	if err != nil {
		logger.Warn("Failed to create failures counter", logger.ErrorFields("metrics", err))
	}

	m.releases, err = meter.Int64Counter("singlekit.releases",
		metric.WithDescription("Singleton instances released at teardown"),
		metric.WithUnit("1"))
	if err != nil {
		logger.Warn("Failed to create releases counter", logger.ErrorFields("metrics", err))
	}

	m.constructionDuration, err = meter.Float64Histogram("singlekit.construction.duration",
		metric.WithDescription("Singleton construction duration"),
		metric.WithUnit("s"))
	if err != nil {
		logger.Warn("Failed to create duration histogram", logger.ErrorFields("metrics", err))
	}

	return m
}

// ObserveConstruction records a successful construction and its duration.
func (m *Metrics) ObserveConstruction(provider string, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String("provider", provider))
	ctx := context.Background()
	if m.constructions != nil {
		m.constructions.Add(ctx, 1, attrs)
	}
	if m.constructionDuration != nil {
		m.constructionDuration.Record(ctx, d.Seconds(), attrs)
	}
}

// ObserveConstructionFailure records a failed construction attempt.
func (m *Metrics) ObserveConstructionFailure(provider string) {
	if m.constructionFailures != nil {
		m.constructionFailures.Add(context.Background(), 1,
			metric.WithAttributes(attribute.String("provider", provider)))
	}
}

// ObserveRelease records an instance release.
func (m *Metrics) ObserveRelease(provider string) {
	if m.releases != nil {
		m.releases.Add(context.Background(), 1,
			metric.WithAttributes(attribute.String("provider", provider)))
	}
}
