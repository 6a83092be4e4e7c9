package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const spanContextKey = "trace.span"

// Span records metadata about one handler invocation: the route name, request
// method, client address and any outcome attributes the handler attaches.
type Span struct {
	ID       string
	Route    string
	Method   string
	ClientIP string

	start time.Time
	attrs map[string]interface{}
}

// SetAttribute attaches an outcome attribute to the span.
func (s *Span) SetAttribute(key string, value interface{}) {
	if s.attrs == nil {
		s.attrs = map[string]interface{}{}
	}
	s.attrs[key] = value
}

// Tracer wraps handlers so that every invocation emits one structured event
// with the request metadata and the handler's outcome attributes. Business
// logic stays unaware of it.
type Tracer struct {
	logger zerolog.Logger
}

// NewTracer creates a Tracer emitting through the given logger.
func NewTracer(logger zerolog.Logger) *Tracer {
	return &Tracer{logger: logger}
}

// Wrap decorates a handler with a span named after the route.
func (t *Tracer) Wrap(route string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		span := &Span{
			ID:       uuid.New().String(),
			Route:    route,
			Method:   c.Request.Method,
			ClientIP: c.ClientIP(),
			start:    time.Now(),
		}
		c.Set(spanContextKey, span)

		handler(c)

		event := t.logger.Info().
			Str("span_id", span.ID).
			Str("route", span.Route).
			Str("request_method", span.Method).
			Str("user_ip", span.ClientIP).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(span.start))
		for key, value := range span.attrs {
			event = event.Interface(key, value)
		}
		event.Msg("request handled")
	}
}

// SpanFromContext returns the span of the current invocation. Handlers called
// outside a Tracer.Wrap get a detached span so attribute calls stay safe.
func SpanFromContext(c *gin.Context) *Span {
	if value, exists := c.Get(spanContextKey); exists {
		if span, ok := value.(*Span); ok {
			return span
		}
	}
	return &Span{}
}
