/*
Package tracing provides lightweight request tracing.

Spans are buffered on a channel and logged through zap by a single
collector goroutine. Trace context travels in the X-Trace-ID and X-Span-ID
headers and in the request context.

# Usage

	tracer := tracing.New("urlargs", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "location.set")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
