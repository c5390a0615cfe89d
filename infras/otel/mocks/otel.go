package mocks

import (
	"context"

	"agenda/infras/otel"
)

// NewOtel returns a tracer that records nothing, for wiring services in tests.
func NewOtel() otel.Otel {
	return passthroughOtel{}
}

type passthroughOtel struct{}

func (passthroughOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}
