package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarningResponse respuestas degradadas: la operación produjo un resultado
// válido pero con fallback por un fallo transitorio (ej. no se pudo leer la
// configuración remota). Nunca es fatal.
type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
