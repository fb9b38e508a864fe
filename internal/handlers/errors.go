package handlers

import "github.com/danielgtaylor/huma/v2"

// Client-facing error messages.
const (
	MsgURLRequired   = "URL is required"
	MsgInvalidURL    = "Invalid URL format"
	MsgNotFound      = "Short URL not found"
	MsgQRFailed      = "Failed to generate QR code"
	MsgInternalError = "Internal server error"
)

// ErrorResponse is the body of every failed response.
type ErrorResponse struct {
	status  int
	Message string `doc:"What went wrong" example:"Short URL not found" json:"error"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *ErrorResponse) GetStatus() int {
	return e.status
}

// UseErrorResponses makes huma render all errors, including its own
// validation failures, as ErrorResponse. Call it before registering routes.
func UseErrorResponses() {
	huma.NewError = func(status int, msg string, _ ...error) huma.StatusError {
		return &ErrorResponse{status: status, Message: msg}
	}
}
