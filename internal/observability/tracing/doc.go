// Package tracing provides OpenTelemetry tracing for HTTP requests and store calls.
//
// The HTTP middleware extracts W3C trace context, opens a server span named after
// the matched route and echoes the trace id in the X-Trace-Id response header.
// StartSpan opens child spans for store calls. Setup installs the SDK provider;
// until it runs the global no-op provider is used.
package tracing
