package transport

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	requestsTotal         metric.Int64Counter
	authFailuresTotal     metric.Int64Counter
	translatedErrorsTotal metric.Int64Counter
)

func init() {
	m := otel.Meter("staffi/transport")

	requestsTotal, _ = m.Int64Counter("client_requests_total",
		metric.WithDescription("Total outbound requests"))
	authFailuresTotal, _ = m.Int64Counter("client_auth_failures_total",
		metric.WithDescription("Total 401 responses that invalidated the session"))
	translatedErrorsTotal, _ = m.Int64Counter("client_translated_errors_total",
		metric.WithDescription("Total backend errors shown as translated notifications"))
}
