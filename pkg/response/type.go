package response

// Resp is the standard JSON response body. Clients of the task contract
// read only Data; Errors carries per-field validation failures.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
