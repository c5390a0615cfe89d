package mocks

import "agenda/infras/otel"

func NewScope() otel.Scope {
	return noopScope{}
}

type noopScope struct{}

func (noopScope) End()                           {}
func (noopScope) TraceError(_ error)             {}
func (noopScope) TraceIfError(_ error)           {}
func (noopScope) SetAttribute(_ string, _ any)   {}
func (noopScope) SetAttributes(_ map[string]any) {}
