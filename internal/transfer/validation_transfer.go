package transfer

// FieldError is one entry in the structured error list returned for
// invalid request bodies.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
