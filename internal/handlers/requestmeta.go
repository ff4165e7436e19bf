package handlers

import (
	"context"

	"go.uber.org/zap"
)

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata used to annotate logs.
type RequestMeta struct {
	RequestID string
	ClientIP  string
	UserAgent string
	Referrer  string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

func (m RequestMeta) fields() []zap.Field {
	return []zap.Field{
		zap.String("request_id", m.RequestID),
		zap.String("client_ip", m.ClientIP),
		zap.String("user_agent", m.UserAgent),
	}
}

// Recorder receives business metrics from handlers.
type Recorder interface {
	LinkCreated(provider string, custom bool)
	ToolInvoked(tool, outcome string)
}

const (
	outcomeSuccess = "success"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)
