package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/cartshop/services/billing/domain/models"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
)

const instrumentationName = "github.com/ghuser/cartshop/services/billing"

var tracer trace.Tracer = otel.Tracer(instrumentationName)

// billingMetrics records through the global OTel MeterProvider, which
// telemetry.Setup points at Prometheus and OTLP. Without Setup the global
// provider is a no-op.
type billingMetrics struct {
	billsCommitted metric.Int64Counter
	billTotal      metric.Float64Histogram
	itemsAdded     metric.Int64Counter
}

func newBillingMetrics() (*billingMetrics, error) {
	meter := otel.Meter(instrumentationName)

	committed, err := meter.Int64Counter("billing.bills.committed",
		metric.WithDescription("Bills appended to the ledger"))
	if err != nil {
		return nil, fmt.Errorf("billing metrics: %w", err)
	}
	total, err := meter.Float64Histogram("billing.bill.total",
		metric.WithDescription("Committed bill totals"),
		metric.WithUnit("{currency}"))
	if err != nil {
		return nil, fmt.Errorf("billing metrics: %w", err)
	}
	added, err := meter.Int64Counter("billing.items.added",
		metric.WithDescription("Units added to the active bill, by catalog kind"))
	if err != nil {
		return nil, fmt.Errorf("billing metrics: %w", err)
	}
	return &billingMetrics{billsCommitted: committed, billTotal: total, itemsAdded: added}, nil
}

func (m *billingMetrics) itemAdded(ctx context.Context, kind catalogmodels.Kind, qty int) {
	m.itemsAdded.Add(ctx, int64(qty), metric.WithAttributes(attribute.String("kind", string(kind))))
}

func (m *billingMetrics) billCommitted(ctx context.Context, b *models.Bill) {
	m.billsCommitted.Add(ctx, 1)
	m.billTotal.Record(ctx, b.Total.InexactFloat64())
}
