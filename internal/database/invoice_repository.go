package database

import (
	"context"
	"fmt"
	"time"

	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/sirupsen/logrus"
)

// InvoiceRepository maneja las operaciones de base de datos para Invoice
type InvoiceRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewInvoiceRepository crea una nueva instancia del repositorio
func NewInvoiceRepository(db *DB, logger *logrus.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserta una nueva factura
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date,
	)
	if err != nil {
		return fmt.Errorf("error inserting invoice: %w", err)
	}

	return nil
}

// Update modifica cliente, importe y estado de una factura. Si el id no
// existe no se modifica ninguna fila y no se considera error.
func (r *InvoiceRepository) Update(ctx context.Context, id string, draft models.InvoiceDraft) (int64, error) {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, draft.CustomerID, draft.AmountCents, draft.Status, id)
	if err != nil {
		return 0, fmt.Errorf("error updating invoice: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected, nil
}

// Delete elimina una factura; borrar un id inexistente no es error
func (r *InvoiceRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting invoice: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected, nil
}

// List obtiene las facturas más recientes con los datos del cliente
func (r *InvoiceRepository) List(ctx context.Context, limit int) ([]models.InvoiceListItem, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date,
			   c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		ORDER BY i.date DESC, i.id
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.InvoiceListItem{}
	for rows.Next() {
		var item models.InvoiceListItem
		var date time.Time
		err := rows.Scan(
			&item.ID, &item.CustomerID, &item.Amount, &item.Status, &date,
			&item.CustomerName, &item.CustomerEmail, &item.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice: %w", err)
		}
		item.Date = date.Format(models.DateLayout)
		invoices = append(invoices, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return invoices, nil
}
