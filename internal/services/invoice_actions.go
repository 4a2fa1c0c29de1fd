package services

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/invoice-actions/internal/config"
	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/hypernova-labs/invoice-actions/internal/validation"
	"github.com/sirupsen/logrus"
)

// Mensajes devueltos al formulario
const (
	MessageCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MessageUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MessageCreateDatabaseError = "Database Error: Failed to Create Invoice."
	MessageUpdateDatabaseError = "Database Error: Failed to Update Invoice."
	MessageDeleteDatabaseError = "Database Error: Failed to Delete Invoice."
	MessageInvoiceDeleted      = "Deleted Invoice."
)

// ErrDeleteDisabled se retorna cuando el borrado está desactivado por configuración
var ErrDeleteDisabled = errors.New("failed to delete invoice: deletion is disabled")

// InvoiceStore es la persistencia que usan las acciones
type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, id string, draft models.InvoiceDraft) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Revalidator invalida una vista cacheada
type Revalidator interface {
	Revalidate(ctx context.Context, path string)
}

// InvoiceActions implementa las acciones de formulario sobre facturas
type InvoiceActions struct {
	store          InvoiceStore
	schema         *validation.Schema
	revalidator    Revalidator
	listingPath    string
	deleteDisabled bool
	now            func() time.Time
	newID          func() string
	logger         *logrus.Logger
}

// NewInvoiceActions crea una nueva instancia de las acciones
func NewInvoiceActions(store InvoiceStore, revalidator Revalidator, cfg config.ActionsConfig, logger *logrus.Logger) *InvoiceActions {
	return &InvoiceActions{
		store:          store,
		schema:         validation.NewSchema(),
		revalidator:    revalidator,
		listingPath:    cfg.ListingPath,
		deleteDisabled: cfg.DeleteDisabled,
		now:            time.Now,
		newID:          func() string { return uuid.New().String() },
		logger:         logger,
	}
}

// CreateInvoice valida el formulario, inserta la factura con fecha de hoy y
// redirige al listado
func (a *InvoiceActions) CreateInvoice(ctx context.Context, form url.Values) models.ActionResult {
	draft, fieldErrors := a.schema.SafeParse(validation.CreateInvoice, form)
	if fieldErrors != nil {
		return models.Failed(MessageCreateMissingFields, fieldErrors)
	}

	invoice := models.NewInvoice(a.newID(), draft, a.now())
	if err := a.store.Create(ctx, invoice); err != nil {
		a.logger.WithError(err).WithField("customer_id", draft.CustomerID).Error("Database error creating invoice")
		return models.Failed(MessageCreateDatabaseError, nil)
	}

	a.logger.WithFields(logrus.Fields{
		"invoice_id":  invoice.ID,
		"customer_id": invoice.CustomerID,
		"amount":      invoice.Amount,
		"status":      invoice.Status,
	}).Info("Invoice created successfully")

	a.revalidator.Revalidate(ctx, a.listingPath)
	return models.RedirectTo(a.listingPath)
}

// UpdateInvoice valida el formulario y actualiza la factura id. Un id
// inexistente no modifica nada y se trata como éxito.
func (a *InvoiceActions) UpdateInvoice(ctx context.Context, id string, form url.Values) models.ActionResult {
	draft, fieldErrors := a.schema.SafeParse(validation.UpdateInvoice, form)
	if fieldErrors != nil {
		return models.Failed(MessageUpdateMissingFields, fieldErrors)
	}

	rows, err := a.store.Update(ctx, id, draft)
	if err != nil {
		a.logger.WithError(err).WithField("invoice_id", id).Error("Database error updating invoice")
		return models.Failed(MessageUpdateDatabaseError, nil)
	}

	a.logger.WithFields(logrus.Fields{
		"invoice_id":    id,
		"rows_affected": rows,
	}).Info("Invoice updated")

	a.revalidator.Revalidate(ctx, a.listingPath)
	return models.RedirectTo(a.listingPath)
}

// DeleteInvoice elimina la factura id y refresca el listado. Borrar dos veces
// el mismo id es seguro. Con el borrado desactivado retorna ErrDeleteDisabled
// sin tocar la base de datos.
func (a *InvoiceActions) DeleteInvoice(ctx context.Context, id string) (models.ActionResult, error) {
	if a.deleteDisabled {
		return models.ActionResult{}, ErrDeleteDisabled
	}

	rows, err := a.store.Delete(ctx, id)
	if err != nil {
		a.logger.WithError(err).WithField("invoice_id", id).Error("Database error deleting invoice")
		return models.Failed(MessageDeleteDatabaseError, nil), nil
	}

	a.logger.WithFields(logrus.Fields{
		"invoice_id":    id,
		"rows_affected": rows,
	}).Info("Invoice deleted")

	a.revalidator.Revalidate(ctx, a.listingPath)
	return models.Refresh(MessageInvoiceDeleted), nil
}
