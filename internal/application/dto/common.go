package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateFormat formato de fecha de la API (solo día, sin hora).
const DateFormat = "2006-01-02"
