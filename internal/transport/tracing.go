package transport

import (
	"context"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("staffi/transport")

// Tracing opens a span per request and records the outcome. It sits outermost
// so the span covers every other stage's side effects.
func Tracing() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			ctx, span := tracer.Start(ctx, "client."+req.Method)
			defer span.End()
			span.SetAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.path", req.URL.Path),
			)
			requestsTotal.Add(ctx, 1,
				metric.WithAttributes(attribute.String("method", req.Method)))

			resp, err := next(ctx, req)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				if apiErr := AsAPIError(err); apiErr != nil {
					span.SetAttributes(attribute.String("http.status_code",
						strconv.Itoa(apiErr.StatusCode)))
				}
				return resp, err
			}
			span.SetAttributes(attribute.String("http.status_code",
				strconv.Itoa(resp.StatusCode)))
			return resp, nil
		}
	}
}
