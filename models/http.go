package models

// UserEnvelope wraps a single user in the {"data":{"user":...}} shape returned
// by the authentication endpoints.
type UserEnvelope struct {
	Data UserData `json:"data"`
}

// UserData is the inner object of [UserEnvelope].
type UserData struct {
	User User `json:"user"`
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	// Error is a stable machine-readable code such as "invalid_credentials".
	Error string `json:"error"`

	// Message is a human-readable description safe to show to end users.
	Message string `json:"message"`

	// Fields carries per-field validation failures, if any.
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes one rejected field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthStatus is the unauthenticated answer of the check-auth endpoint.
type AuthStatus struct {
	Authenticated bool `json:"authenticated"`
}
