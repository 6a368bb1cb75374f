package utils

import (
	"fmt"
	"net/http"
)

// APIError is the error envelope returned to clients. Handlers and services
// return it as a plain error; the Fiber error handler writes it out.
type APIError struct {
	StatusCode int      `json:"statusCode"`
	Data       any      `json:"data"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func NewAPIError(status int, message string, errs ...string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}
	if errs == nil {
		errs = []string{}
	}
	return &APIError{
		StatusCode: status,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func BadRequest(message string, errs ...string) *APIError {
	return NewAPIError(http.StatusBadRequest, message, errs...)
}

// Messages shared by every façade.
const (
	MsgFieldsRequired = "All fields are required"
)
