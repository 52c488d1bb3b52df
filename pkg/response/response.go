package response

// SuccessResponse is the standard JSON envelope for successful calls.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the standard JSON envelope for failed calls.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationResponse carries the per-field error map for form validation
// failures. Field errors are recoverable and rendered inline by clients.
type ValidationResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func Err(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
