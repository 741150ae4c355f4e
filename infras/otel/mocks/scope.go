package mocks

import "hotel/infras/otel"

// Scope discards spans but keeps the errors traced through it.
type Scope struct {
	Errors []error
}

func (s *Scope) AddEvent(_ string) {}

func (s *Scope) End() {}

func (s *Scope) SetAttribute(_ string, _ any) {}

func (s *Scope) SetAttributes(_ map[string]any) {}

func (s *Scope) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func NewScope() otel.Scope {
	return &Scope{}
}
