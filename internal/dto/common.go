package dto

// Envelope is the uniform response shape for mutations: a success flag, a
// human-readable message, and the affected resource under data.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps a successful mutation result.
func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail wraps a failed mutation result.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// ListParams defines common offset-based query parameters for listing.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
