package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/invoice-actions/internal/auth"
	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/hypernova-labs/invoice-actions/internal/services"
	"github.com/sirupsen/logrus"
)

const maxFormMemory = 1 << 20

// HealthChecker reporta el estado de una dependencia
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// API maneja todos los endpoints HTTP
type API struct {
	invoiceActions *services.InvoiceActions
	authActions    *services.AuthActions
	listing        *services.InvoiceListing
	sessions       *auth.SessionManager
	cookieName     string
	secureCookies  bool
	checks         map[string]HealthChecker
	logger         *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	invoiceActions *services.InvoiceActions,
	authActions *services.AuthActions,
	listing *services.InvoiceListing,
	sessions *auth.SessionManager,
	cookieName string,
	secureCookies bool,
	checks map[string]HealthChecker,
	logger *logrus.Logger,
) *API {
	return &API{
		invoiceActions: invoiceActions,
		authActions:    authActions,
		listing:        listing,
		sessions:       sessions,
		cookieName:     cookieName,
		secureCookies:  secureCookies,
		checks:         checks,
		logger:         logger,
	}
}

// Health reporta el estado del servicio y sus dependencias
func (api *API) Health(c *gin.Context) {
	status := http.StatusOK
	deps := gin.H{}

	for name, check := range api.checks {
		if err := check.HealthCheck(c.Request.Context()); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	c.JSON(status, gin.H{
		"status":       http.StatusText(status),
		"dependencies": deps,
	})
}

// Dashboard retorna el usuario de la sesión actual
func (api *API) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetString(ContextUserID),
		"email":   c.GetString(ContextUserEmail),
	})
}

// ListInvoices retorna la vista del listado de facturas
func (api *API) ListInvoices(c *gin.Context) {
	invoices, err := api.listing.Invoices(c.Request.Context())
	if err != nil {
		api.logger.WithError(err).Error("Error listing invoices")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Failed to fetch invoices"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// CreateInvoice procesa el formulario de nueva factura
func (api *API) CreateInvoice(c *gin.Context) {
	form, ok := api.parseForm(c)
	if !ok {
		return
	}

	api.respond(c, api.invoiceActions.CreateInvoice(c.Request.Context(), form))
}

// UpdateInvoice procesa el formulario de edición de una factura
func (api *API) UpdateInvoice(c *gin.Context) {
	form, ok := api.parseForm(c)
	if !ok {
		return
	}

	api.respond(c, api.invoiceActions.UpdateInvoice(c.Request.Context(), c.Param("id"), form))
}

// DeleteInvoice elimina una factura desde el listado
func (api *API) DeleteInvoice(c *gin.Context) {
	result, err := api.invoiceActions.DeleteInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDeleteDisabled) {
			api.logger.WithField("invoice_id", c.Param("id")).Warn("Delete attempted while disabled")
			c.JSON(http.StatusInternalServerError, models.NewInternalError("Failed to Delete Invoice"))
			return
		}
		api.logger.WithError(err).Error("Error deleting invoice")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Something went wrong"))
		return
	}

	api.respond(c, result)
}

// Login procesa el formulario de inicio de sesión
func (api *API) Login(c *gin.Context) {
	form, ok := api.parseForm(c)
	if !ok {
		return
	}

	session, message, err := api.authActions.Authenticate(c.Request.Context(), form)
	if err != nil {
		api.logger.WithError(err).Error("Unhandled authentication failure")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Something went wrong"))
		return
	}

	if session == nil {
		c.JSON(http.StatusUnauthorized, models.FormState{Message: message})
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(api.cookieName, session.Token, maxAge, "/", "", api.secureCookies, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout elimina la cookie de sesión
func (api *API) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(api.cookieName, "", -1, "/", "", api.secureCookies, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

// respond traduce el resultado de una acción a HTTP
func (api *API) respond(c *gin.Context, result models.ActionResult) {
	switch result.Outcome {
	case models.OutcomeRedirect:
		c.Redirect(http.StatusSeeOther, result.Location)
	case models.OutcomeRefresh:
		c.JSON(http.StatusOK, result.State)
	default:
		c.JSON(http.StatusUnprocessableEntity, result.State)
	}
}

// parseForm lee el cuerpo urlencoded o multipart del formulario
func (api *API) parseForm(c *gin.Context) (url.Values, bool) {
	err := c.Request.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid form submission", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return nil, false
	}

	return c.Request.PostForm, true
}
