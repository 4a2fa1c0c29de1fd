package models

// Outcome indica cómo debe continuar el llamador tras una acción
type Outcome string

const (
	// OutcomeFailed: el usuario permanece en el formulario con el estado devuelto
	OutcomeFailed Outcome = "failed"
	// OutcomeRedirect: la petición terminó, navegar a Location
	OutcomeRedirect Outcome = "redirect"
	// OutcomeRefresh: la vista actual debe recargarse
	OutcomeRefresh Outcome = "refresh"
)

// FormState es el estado que se devuelve al formulario
type FormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// ActionResult es el resultado de una acción de formulario
type ActionResult struct {
	Outcome  Outcome
	State    FormState
	Location string
}

// Failed crea un resultado fallido
func Failed(message string, fieldErrors map[string][]string) ActionResult {
	return ActionResult{
		Outcome: OutcomeFailed,
		State:   FormState{Errors: fieldErrors, Message: message},
	}
}

// RedirectTo crea un resultado terminal de navegación
func RedirectTo(location string) ActionResult {
	return ActionResult{Outcome: OutcomeRedirect, Location: location}
}

// Refresh crea un resultado que solo recarga la vista actual
func Refresh(message string) ActionResult {
	return ActionResult{Outcome: OutcomeRefresh, State: FormState{Message: message}}
}

// IsRedirect retorna true si el llamador debe navegar y no emitir más salida
func (r ActionResult) IsRedirect() bool {
	return r.Outcome == OutcomeRedirect
}
