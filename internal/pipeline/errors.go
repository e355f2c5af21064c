package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError means the source header is missing required columns. The
// whole batch is rejected; no partial records are produced.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s is missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

// NewSchemaError builds a SchemaError for a source. Missing columns are
// listed in canonical header order.
func NewSchemaError(source string, missing []string) *SchemaError {
	return &SchemaError{Source: source, Missing: missing}
}

// IsSchema returns true if the error (or any error in its chain) is a
// SchemaError.
func IsSchema(err error) bool {
	if err == nil {
		return false
	}
	var se *SchemaError
	return errors.As(err, &se)
}
