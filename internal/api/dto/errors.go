package dto

// ErrorResponse is the body of every failed request. Kind is set for
// rejected ownership changes and validation failures.
type ErrorResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Kind    string         `json:"kind,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}
