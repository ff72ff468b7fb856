// Package openapi turns enum schemas of an OpenAPI 3 document into choice
// lists. Component schemas are addressed by name ("Color") and their
// properties by a dotted path ("Pet.tags"). Labels come from the
// x-enum-labels or x-enumNames extensions when present.
package openapi
