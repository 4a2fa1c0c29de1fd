package services

import (
	"context"
	"fmt"

	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/sirupsen/logrus"
)

const listingLimit = 50

// InvoiceLister lee el listado de facturas desde la base de datos
type InvoiceLister interface {
	List(ctx context.Context, limit int) ([]models.InvoiceListItem, error)
}

// InvoiceListing sirve la vista del listado de facturas usando la caché de vistas
type InvoiceListing struct {
	lister InvoiceLister
	cache  *ViewCache
	path   string
	logger *logrus.Logger
}

// NewInvoiceListing crea una nueva instancia del listado
func NewInvoiceListing(lister InvoiceLister, cache *ViewCache, path string, logger *logrus.Logger) *InvoiceListing {
	return &InvoiceListing{
		lister: lister,
		cache:  cache,
		path:   path,
		logger: logger,
	}
}

// Invoices retorna el listado, desde caché si la vista sigue vigente
func (l *InvoiceListing) Invoices(ctx context.Context) ([]models.InvoiceListItem, error) {
	var invoices []models.InvoiceListItem

	hit, err := l.cache.Get(ctx, l.path, &invoices)
	if err != nil {
		l.logger.WithError(err).Warn("Error reading cached invoice listing")
	}
	if hit {
		return invoices, nil
	}

	invoices, err = l.lister.List(ctx, listingLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing invoices: %w", err)
	}

	if err := l.cache.Set(ctx, l.path, invoices); err != nil {
		l.logger.WithError(err).Warn("Error caching invoice listing")
	}

	return invoices, nil
}
