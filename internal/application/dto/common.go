package dto

// ErrorResponse cuerpo de error HTTP: clase del error + detalle legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
