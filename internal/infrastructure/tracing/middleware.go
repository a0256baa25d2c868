package tracing

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/urlargs/internal/shared/id"
)

// HTTPMiddleware creates Gin middleware for HTTP tracing. Incoming
// X-Trace-ID and X-Span-ID headers continue an existing trace; the response
// carries the IDs of the request span.
func HTTPMiddleware(tracer *Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithTrace(c.Request.Context(),
			id.TraceID(c.GetHeader(TraceHeader)),
			id.SpanID(c.GetHeader(SpanHeader)),
		)

		name := c.FullPath()
		if name == "" {
			name = c.Request.URL.Path
		}
		span, ctx := tracer.StartSpan(ctx, c.Request.Method+" "+name)
		span.SetTag("http.method", c.Request.Method)
		span.SetTag("http.url", c.Request.URL.String())

		c.Request = c.Request.WithContext(ctx)

		c.Header(TraceHeader, span.TraceID.String())
		c.Header(SpanHeader, span.SpanID.String())

		c.Next()

		span.SetStatus(c.Writer.Status())
		span.SetTag("http.status", strconv.Itoa(c.Writer.Status()))
		if len(c.Errors) > 0 {
			span.SetError(c.Errors.Last())
		}

		span.Finish()
		tracer.Submit(span)
	}
}
