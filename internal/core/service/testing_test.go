package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/powerme/portal-api/internal/core/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// stubCustomerData is an in-memory CustomerDataStore for service tests.
type stubCustomerData struct {
	documents map[string][]domain.Document
	cases     map[string][]domain.Case
	failWith  error
}

func newStubCustomerData() *stubCustomerData {
	return &stubCustomerData{
		documents: make(map[string][]domain.Document),
		cases:     make(map[string][]domain.Case),
	}
}

func (s *stubCustomerData) ListDocuments(_ context.Context, customerID string) ([]domain.Document, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.documents[customerID], nil
}

func (s *stubCustomerData) AppendDocument(_ context.Context, customerID string, doc domain.Document) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.documents[customerID] = append(s.documents[customerID], doc)
	return nil
}

func (s *stubCustomerData) ListCases(_ context.Context, customerID string) ([]domain.Case, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.cases[customerID], nil
}

func (s *stubCustomerData) AppendCase(_ context.Context, customerID string, c domain.Case) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.cases[customerID] = append(s.cases[customerID], c)
	return nil
}
