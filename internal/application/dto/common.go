package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse cuerpo de /health y /ready.
type StatusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}
