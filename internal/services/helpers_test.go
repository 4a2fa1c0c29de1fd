package services

import (
	"context"
	"io"
	"net/url"
	"sync"

	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// memoryStore simula la tabla invoices
type memoryStore struct {
	mu       sync.Mutex
	invoices map[string]models.Invoice
	err      error
	calls    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{invoices: map[string]models.Invoice{}}
}

func (s *memoryStore) Create(_ context.Context, invoice *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.invoices[invoice.ID] = *invoice
	return nil
}

func (s *memoryStore) Update(_ context.Context, id string, draft models.InvoiceDraft) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	invoice, ok := s.invoices[id]
	if !ok {
		return 0, nil
	}
	invoice.CustomerID = draft.CustomerID
	invoice.Amount = draft.AmountCents
	invoice.Status = draft.Status
	s.invoices[id] = invoice
	return 1, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.invoices[id]; !ok {
		return 0, nil
	}
	delete(s.invoices, id)
	return 1, nil
}

type recordingRevalidator struct {
	paths []string
}

func (r *recordingRevalidator) Revalidate(_ context.Context, path string) {
	r.paths = append(r.paths, path)
}

func invoiceForm(customerID, amount, status string) url.Values {
	return url.Values{
		"customerId": {customerID},
		"amount":     {amount},
		"status":     {status},
	}
}
