package validation

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/shopspring/decimal"
)

// Nombres de campo tal como llegan en el formulario
const (
	FieldID         = "id"
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
	FieldDate       = "date"
)

const maxAmountCents = math.MaxInt32

var (
	errAmountNotPositive = errors.New("amount must be a number greater than zero")
	errAmountTooLarge    = errors.New("amount exceeds the storable maximum")
)

// InvoiceForm es el esquema compartido de una factura. Las acciones validan
// vistas parciales de este esquema (ver View).
type InvoiceForm struct {
	ID         string `form:"id" validate:"required"`
	CustomerID string `form:"customerId" validate:"required"`
	Amount     string `form:"amount" validate:"amount"`
	Status     string `form:"status" validate:"oneof=pending paid"`
	Date       string `form:"date" validate:"required"`
}

// View es una vista con nombre del esquema que omite algunos campos
type View struct {
	Name string
	omit []string
}

var (
	// CreateInvoice omite id y date: ambos los genera el servidor
	CreateInvoice = View{Name: "CreateInvoice", omit: []string{"ID", "Date"}}
	// UpdateInvoice omite id (viene de la ruta) y date (no se modifica)
	UpdateInvoice = View{Name: "UpdateInvoice", omit: []string{"ID", "Date"}}
)

var fieldMessages = map[string]string{
	FieldCustomerID: "Please select a customer.",
	FieldAmount:     "Please enter an amount greater than $0.",
	FieldStatus:     "Please select an invoice status.",
}

// FieldErrors asocia cada campo con sus mensajes, en orden
type FieldErrors map[string][]string

// Error implementa la interfaz error
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

// Schema valida y convierte formularios de factura
type Schema struct {
	validate *validator.Validate
}

// NewSchema crea el esquema con sus reglas registradas
func NewSchema() *Schema {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Solo falla si el tag ya estaba registrado
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, err := AmountInCents(fl.Field().String())
		return err == nil
	})

	return &Schema{validate: v}
}

// SafeParse valida la vista indicada sobre los valores del formulario. Todos
// los campos inválidos se reportan en una sola pasada; si no hay errores el
// segundo valor es nil.
func (s *Schema) SafeParse(view View, form url.Values) (models.InvoiceDraft, FieldErrors) {
	input := InvoiceForm{
		CustomerID: form.Get(FieldCustomerID),
		Amount:     form.Get(FieldAmount),
		Status:     form.Get(FieldStatus),
	}

	if err := s.validate.StructExcept(&input, view.omit...); err != nil {
		return models.InvoiceDraft{}, toFieldErrors(err)
	}

	cents, err := AmountInCents(input.Amount)
	if err != nil {
		return models.InvoiceDraft{}, FieldErrors{FieldAmount: {fieldMessages[FieldAmount]}}
	}

	return models.InvoiceDraft{
		CustomerID:  input.CustomerID,
		AmountCents: cents,
		Status:      models.InvoiceStatus(input.Status),
	}, nil
}

// AmountInCents convierte un importe decimal en texto a centavos enteros,
// redondeando a la unidad más cercana.
func AmountInCents(raw string) (int64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !amount.IsPositive() {
		return 0, errAmountNotPositive
	}

	cents := amount.Mul(decimal.NewFromInt(100)).Round(0)
	if cents.GreaterThan(decimal.NewFromInt(maxAmountCents)) {
		return 0, errAmountTooLarge
	}

	return cents.IntPart(), nil
}

func toFieldErrors(err error) FieldErrors {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"_": {err.Error()}}
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		message, ok := fieldMessages[fe.Field()]
		if !ok {
			message = fmt.Sprintf("Invalid value for %s.", fe.Field())
		}
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], message)
	}
	return fieldErrors
}
