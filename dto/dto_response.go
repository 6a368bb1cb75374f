package dto

// APIResponse is the success envelope every façade responds with.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func NewAPIResponse(status int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	}
}

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode" example:"400"`
	Data       any      `json:"data"`
	Message    string   `json:"message" example:"All fields are required"`
	Success    bool     `json:"success" example:"false"`
	Errors     []string `json:"errors"`
}
