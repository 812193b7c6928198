package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of every span started by this module
const TracerName = "fredonbytes-storefront"

// Span attribute keys of provider calls
const (
	AttrProvider  = attribute.Key("storefront.provider")
	AttrOperation = attribute.Key("storefront.operation")
	AttrChannel   = attribute.Key("storefront.channel")
	AttrTable     = attribute.Key("storefront.table")
	AttrHTTPCode  = attribute.Key("http.response.status_code")
)

// Table tags a span with the record table a call reads or writes
func Table(name string) attribute.KeyValue { return AttrTable.String(name) }

// Channel tags a span with the GraphQL channel (query or mutation)
func Channel(name string) attribute.KeyValue { return AttrChannel.String(name) }

// StartProviderSpan starts a client span for one remote call to a backing
// provider. The span is named {provider}.{operation}, e.g. "vendure.PlaceOrder",
// and must be closed with EndProviderSpan.
func StartProviderSpan(ctx context.Context, provider, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{
		AttrProvider.String(provider),
		AttrOperation.String(operation),
	}, attrs...)

	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, provider+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// EndProviderSpan sets the span status from err and ends the span
func EndProviderSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// RecordHTTPStatus tags the span in ctx with the status code of the provider's answer
func RecordHTTPStatus(ctx context.Context, status int) {
	trace.SpanFromContext(ctx).SetAttributes(AttrHTTPCode.Int(status))
}
