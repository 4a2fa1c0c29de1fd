package auth

import "fmt"

// ErrorType clasifica los fallos del proveedor de credenciales
type ErrorType string

const (
	// CredentialsSignin: las credenciales no son válidas
	CredentialsSignin ErrorType = "CredentialsSignin"
	// CallbackRouteError: el proveedor falló al completar el inicio de sesión
	CallbackRouteError ErrorType = "CallbackRouteError"
)

// Error es un fallo de autenticación reconocido
type Error struct {
	Type ErrorType
	Err  error
}

// Error implementa la interfaz error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
	return string(e.Type)
}

// Unwrap retorna el error original
func (e *Error) Unwrap() error {
	return e.Err
}
