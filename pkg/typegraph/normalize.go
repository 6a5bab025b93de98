package typegraph

import (
	"strings"

	"github.com/Atwolf/graph-vis/pkg/introspection"
)

// UnknownTypeName is substituted when a field's type reference cannot be
// resolved to a named leaf. Field edges always need a concrete target name;
// the lookup for this one simply never succeeds.
const UnknownTypeName = "Unknown"

var builtInScalarNames = map[string]struct{}{
	"String":  {},
	"Int":     {},
	"Float":   {},
	"Boolean": {},
	"ID":      {},
}

// ResolveBaseName strips LIST and NON_NULL wrappers from ref and returns the
// name of the named leaf. A nil ref, a wrapper without an inner type or a
// leaf without a name yield ok == false; malformed chains are a dead end, not
// a panic. Wrapper chains from real schemas are finite, so unbounded nesting
// is not a concern here.
func ResolveBaseName(ref *introspection.TypeRef) (name string, ok bool) {
	if ref == nil {
		return "", false
	}
	switch ref.Kind {
	case introspection.TypeKindList, introspection.TypeKindNonNull:
		return ResolveBaseName(ref.OfType)
	}
	if ref.Name == nil {
		return "", false
	}
	return *ref.Name, true
}

// Normalize converts one raw type record into its canonical node. It is pure
// and total: any record with a name and kind produces a node, whatever else
// is missing.
func Normalize(fullType introspection.FullType) TypeNode {
	node := TypeNode{
		Name:           fullType.Name,
		Kind:           fullType.Kind,
		IsComposite:    isCompositeKind(fullType.Kind),
		IsRelayPattern: isRelayPatternName(fullType.Name),
		IsBuiltIn:      isBuiltInName(fullType.Name),
		Description:    fullType.Description,
	}

	if len(fullType.Fields) > 0 {
		node.Fields = make([]FieldRef, 0, len(fullType.Fields))
		for i := range fullType.Fields {
			field := &fullType.Fields[i]
			targetName, ok := ResolveBaseName(&field.Type)
			if !ok {
				targetName = UnknownTypeName
			}
			node.Fields = append(node.Fields, FieldRef{
				Name:        field.Name,
				TypeName:    targetName,
				Description: field.Description,
			})
		}
	}

	for i := range fullType.Interfaces {
		if name, ok := ResolveBaseName(&fullType.Interfaces[i]); ok {
			node.Interfaces = append(node.Interfaces, name)
		}
	}

	for i := range fullType.PossibleTypes {
		if name, ok := ResolveBaseName(&fullType.PossibleTypes[i]); ok {
			node.UnionMembers = append(node.UnionMembers, name)
		}
	}

	return node
}

func isCompositeKind(kind introspection.TypeKind) bool {
	switch kind {
	case introspection.TypeKindObject, introspection.TypeKindInterface, introspection.TypeKindUnion:
		return true
	}
	return false
}

func isRelayPatternName(name string) bool {
	return strings.HasSuffix(name, "Connection") ||
		strings.HasSuffix(name, "Edge") ||
		name == "PageInfo"
}

func isBuiltInName(name string) bool {
	if strings.HasPrefix(name, introspection.MetaTypePrefix) {
		return true
	}
	_, ok := builtInScalarNames[name]
	return ok
}
