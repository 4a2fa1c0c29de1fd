package models

import "time"

// InvoiceStatus representa el estado de cobro de una factura
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// DateLayout es el formato de fecha persistido (sin hora)
const DateLayout = "2006-01-02"

// Invoice representa una fila de la tabla invoices
type Invoice struct {
	ID         string        `json:"id" db:"id"`
	CustomerID string        `json:"customer_id" db:"customer_id"`
	Amount     int64         `json:"amount" db:"amount"` // en centavos
	Status     InvoiceStatus `json:"status" db:"status"`
	Date       string        `json:"date" db:"date"`
}

// InvoiceListItem representa una factura en el listado del dashboard
type InvoiceListItem struct {
	Invoice
	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	ImageURL      string `json:"image_url"`
}

// InvoiceDraft son los campos de un formulario ya validados y convertidos
type InvoiceDraft struct {
	CustomerID  string
	AmountCents int64
	Status      InvoiceStatus
}

// NewInvoice construye la fila a insertar a partir de un borrador
func NewInvoice(id string, draft InvoiceDraft, now time.Time) *Invoice {
	return &Invoice{
		ID:         id,
		CustomerID: draft.CustomerID,
		Amount:     draft.AmountCents,
		Status:     draft.Status,
		Date:       now.UTC().Format(DateLayout),
	}
}
