package typegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atwolf/graph-vis/pkg/introspection"
)

func strptr(s string) *string {
	return &s
}

func namedRef(name string) introspection.TypeRef {
	return introspection.TypeRef{Kind: introspection.TypeKindObject, Name: strptr(name)}
}

// wrap nests ref in n alternating NON_NULL/LIST wrappers.
func wrap(ref introspection.TypeRef, n int) introspection.TypeRef {
	for i := 0; i < n; i++ {
		inner := ref
		kind := introspection.TypeKindNonNull
		if i%2 == 1 {
			kind = introspection.TypeKindList
		}
		ref = introspection.TypeRef{Kind: kind, OfType: &inner}
	}
	return ref
}

func TestResolveBaseName(t *testing.T) {
	t.Run("nil ref", func(t *testing.T) {
		name, ok := ResolveBaseName(nil)
		assert.False(t, ok)
		assert.Equal(t, "", name)
	})

	t.Run("wrapper chains", func(t *testing.T) {
		for _, depth := range []int{0, 1, 3, 7} {
			ref := wrap(namedRef("Droid"), depth)
			name, ok := ResolveBaseName(&ref)
			require.True(t, ok, "depth %d", depth)
			assert.Equal(t, "Droid", name, "depth %d", depth)
		}
	})

	t.Run("wrapper without inner type is a dead end", func(t *testing.T) {
		ref := introspection.TypeRef{Kind: introspection.TypeKindNonNull}
		_, ok := ResolveBaseName(&ref)
		assert.False(t, ok)
	})

	t.Run("leaf without name is a dead end", func(t *testing.T) {
		ref := introspection.TypeRef{Kind: introspection.TypeKindObject}
		_, ok := ResolveBaseName(&ref)
		assert.False(t, ok)
	})
}

func TestNormalize_ClassificationFlags(t *testing.T) {
	tests := []struct {
		name           string
		typeName       string
		kind           introspection.TypeKind
		isComposite    bool
		isRelayPattern bool
		isBuiltIn      bool
	}{
		{"object", "Droid", introspection.TypeKindObject, true, false, false},
		{"interface", "Character", introspection.TypeKindInterface, true, false, false},
		{"union", "SearchResult", introspection.TypeKindUnion, true, false, false},
		{"scalar", "DateTime", introspection.TypeKindScalar, false, false, false},
		{"enum", "Episode", introspection.TypeKindEnum, false, false, false},
		{"input object", "ReviewInput", introspection.TypeKindInputObject, false, false, false},
		{"built-in scalar", "ID", introspection.TypeKindScalar, false, false, true},
		{"meta type", "__Type", introspection.TypeKindObject, true, false, true},
		{"relay connection", "UserConnection", introspection.TypeKindObject, true, true, false},
		{"relay edge", "UserEdge", introspection.TypeKindObject, true, true, false},
		{"relay page info", "PageInfo", introspection.TypeKindObject, true, true, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node := Normalize(introspection.FullType{Kind: test.kind, Name: test.typeName})
			assert.Equal(t, test.isComposite, node.IsComposite, "isComposite")
			assert.Equal(t, test.isRelayPattern, node.IsRelayPattern, "isRelayPattern")
			assert.Equal(t, test.isBuiltIn, node.IsBuiltIn, "isBuiltIn")
		})
	}
}

func TestNormalize_Fields(t *testing.T) {
	t.Run("resolves field types through wrappers", func(t *testing.T) {
		fieldType := wrap(namedRef("Droid"), 3)
		node := Normalize(introspection.FullType{
			Kind: introspection.TypeKindObject,
			Name: "Query",
			Fields: []introspection.Field{
				{Name: "droid", Type: fieldType, Description: "fetch one droid"},
			},
		})
		require.Len(t, node.Fields, 1)
		assert.Equal(t, FieldRef{Name: "droid", TypeName: "Droid", Description: "fetch one droid"}, node.Fields[0])
	})

	t.Run("unresolvable field type becomes the Unknown sentinel", func(t *testing.T) {
		node := Normalize(introspection.FullType{
			Kind: introspection.TypeKindObject,
			Name: "Query",
			Fields: []introspection.Field{
				{Name: "broken", Type: introspection.TypeRef{Kind: introspection.TypeKindNonNull}},
			},
		})
		require.Len(t, node.Fields, 1)
		assert.Equal(t, UnknownTypeName, node.Fields[0].TypeName)
	})

	t.Run("zero fields collapses to absent", func(t *testing.T) {
		withNil := Normalize(introspection.FullType{Kind: introspection.TypeKindScalar, Name: "DateTime"})
		withEmpty := Normalize(introspection.FullType{
			Kind:   introspection.TypeKindObject,
			Name:   "Empty",
			Fields: []introspection.Field{},
		})
		assert.Nil(t, withNil.Fields)
		assert.Nil(t, withEmpty.Fields)
	})
}

func TestNormalize_InterfacesAndUnionMembers(t *testing.T) {
	node := Normalize(introspection.FullType{
		Kind: introspection.TypeKindObject,
		Name: "Droid",
		Interfaces: []introspection.TypeRef{
			namedRef("Character"),
			{Kind: introspection.TypeKindInterface}, // unresolvable, discarded
		},
		PossibleTypes: []introspection.TypeRef{
			namedRef("Human"),
			namedRef("Droid"),
		},
	})
	assert.Equal(t, []string{"Character"}, node.Interfaces)
	assert.Equal(t, []string{"Human", "Droid"}, node.UnionMembers)
}

func TestNormalize_IsDeterministic(t *testing.T) {
	fullType := introspection.FullType{
		Kind:        introspection.TypeKindObject,
		Name:        "UserConnection",
		Description: "a page of users",
		Fields: []introspection.Field{
			{Name: "edges", Type: wrap(namedRef("UserEdge"), 2)},
			{Name: "pageInfo", Type: namedRef("PageInfo")},
		},
	}
	first := Normalize(fullType)
	second := Normalize(fullType)
	assert.Equal(t, first, second)
}
