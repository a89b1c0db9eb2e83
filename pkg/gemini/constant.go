package gemini

import "time"

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 60 * time.Second
)

// Content roles accepted by the API. System text travels separately.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Finish reasons that leave the candidate without usable text.
const (
	FinishReasonSafety     = "SAFETY"
	FinishReasonRecitation = "RECITATION"
)
