package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "An unexpected error occurred"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 400

	DateTimeFormat = time.RFC3339
)
