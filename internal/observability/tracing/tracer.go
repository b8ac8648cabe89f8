package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "daily-news"

// GetTracer returns the application tracer. It resolves through the global
// provider on every call so that a provider installed later (tests, main) is honoured.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartSpan starts an internal span named name as a child of ctx.
//
//	ctx, span := tracing.StartSpan(ctx, "store.article.get")
//	defer span.End()
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
}

// TraceID returns the trace id carried by ctx, or "" when there is none.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
