package res

type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"body,omitempty"`
}

// ErrorRes carries the HTTP status a service failure maps to. Fields holds
// per-field messages when the failure is a form validation error.
type ErrorRes struct {
	Err        error
	StatusCode int
	Fields     map[string]string
}

func (e *ErrorRes) Error() string {
	return e.Err.Error()
}
