package dto

import "time"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// Set only for cooldown errors
	NextAvailable    *time.Time `json:"nextAvailable,omitempty"`
	SecondsRemaining *int64     `json:"secondsRemaining,omitempty"`
}
