package dto

// Envelope is the success wire format shared by every endpoint.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// FieldError names exactly one offending field. Field is omitted for the
// no-data case.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// RequestError is the generic bad-request body; it deliberately does not
// say which field caused the failure.
type RequestError struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
