package validate

// FieldsError carries per-field validation messages; the error handler
// serializes Fields as the response detail.
type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{Fields: fields}
}

func (f *FieldsError) Error() string {
	return "validation failed"
}
