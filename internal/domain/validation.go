package domain

import (
	"maps"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used for struct validation of
// construction inputs and operation contracts.
var Validate = validator.New(validator.WithRequiredStructEnabled())

// cloneStringMap copies a string map, mapping nil to an empty map so callers
// can always insert.
func cloneStringMap(m map[string]string) map[string]string {
	result := make(map[string]string, len(m))
	maps.Copy(result, m)
	return result
}
