// Package introspection models the JSON response of a GraphQL introspection
// query and parses it into the subset this tool cares about: the list of
// schema types and the name of the query root.
//
// The model is deliberately tolerant. Every member that an introspection
// response may omit is nil-able, and the parser never rejects a document for
// missing per-type data. Only the structural minimum (a __schema object with
// a types list) is required.
package introspection

import (
	"encoding/json"
	"io"
)

type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
	TypeKindList        TypeKind = "LIST"
	TypeKindNonNull     TypeKind = "NON_NULL"
)

// Document is the top-level introspection response: { "data": { "__schema": ... } }.
type Document struct {
	Data Data `json:"data"`
}

type Data struct {
	Schema *Schema `json:"__schema"`
}

type Schema struct {
	QueryType        *RootTypeRef `json:"queryType"`
	MutationType     *RootTypeRef `json:"mutationType"`
	SubscriptionType *RootTypeRef `json:"subscriptionType"`
	Types            []FullType   `json:"types"`
	Directives       []Directive  `json:"directives"`
}

// RootTypeRef names one of the schema's root operation types.
type RootTypeRef struct {
	Name string `json:"name"`
}

type FullType struct {
	Kind        TypeKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// nil unless Kind is OBJECT or INTERFACE
	Fields []Field `json:"fields"`
	// nil unless Kind is INPUT_OBJECT
	InputFields []InputValue `json:"inputFields"`
	// nil unless Kind is OBJECT or INTERFACE
	Interfaces []TypeRef `json:"interfaces"`
	// nil unless Kind is ENUM
	EnumValues []EnumValue `json:"enumValues"`
	// nil unless Kind is INTERFACE or UNION
	PossibleTypes []TypeRef `json:"possibleTypes"`
}

// TypeRef is a type reference as it appears on fields, interfaces and union
// members: a chain of LIST/NON_NULL wrappers terminating in a named leaf.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

type Field struct {
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Args              []InputValue `json:"args"`
	Type              TypeRef      `json:"type"`
	IsDeprecated      bool         `json:"isDeprecated"`
	DeprecationReason *string      `json:"deprecationReason"`
}

type InputValue struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         TypeRef `json:"type"`
	DefaultValue *string `json:"defaultValue"`
}

type EnumValue struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

type Directive struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Locations   []string     `json:"locations"`
	Args        []InputValue `json:"args"`
}

// ParseJSON decodes an introspection response from r.
func ParseJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
