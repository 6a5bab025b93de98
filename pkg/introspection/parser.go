package introspection

import (
	"errors"
	"strings"
)

// MetaTypePrefix marks types belonging to the introspection machinery itself
// (__Schema, __Type, ...). They never appear in a relationship graph.
const MetaTypePrefix = "__"

// ErrMissingSchemaTypes is returned when the document lacks the structural
// minimum: a __schema object carrying a types list.
var ErrMissingSchemaTypes = errors.New("introspection document: missing schema.types")

// Parse validates the top-level shape of doc, strips meta-types and reads the
// declared query type name.
//
// A schema without a query type is legal at this level; queryTypeName is then
// empty and the caller decides whether that is fatal. Missing optional data on
// individual type records is never an error.
func Parse(doc *Document) (types []FullType, queryTypeName string, err error) {
	if doc == nil || doc.Data.Schema == nil || doc.Data.Schema.Types == nil {
		return nil, "", ErrMissingSchemaTypes
	}

	schema := doc.Data.Schema

	types = make([]FullType, 0, len(schema.Types))
	for _, fullType := range schema.Types {
		if strings.HasPrefix(fullType.Name, MetaTypePrefix) {
			continue
		}
		types = append(types, fullType)
	}

	if schema.QueryType != nil {
		queryTypeName = schema.QueryType.Name
	}

	return types, queryTypeName, nil
}
