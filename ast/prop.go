package ast

type PropertyKind string

const (
	PropertyKindValue PropertyKind = "value"
	PropertyKindGet   PropertyKind = "get"
	PropertyKindSet   PropertyKind = "set"
)

// PropertyKeyKind records which literal form a property name was written in.
type PropertyKeyKind int

const (
	PropertyKeyIdentifier PropertyKeyKind = iota
	PropertyKeyString
	PropertyKeyNumber
)

type (
	// Property is one member of an object literal. For getters and setters
	// Value is a *FunctionLiteral.
	Property struct {
		Span
		Key   *PropertyKey
		Kind  PropertyKind
		Value Expr
	}

	// PropertyKey is the normalized name of an object literal member. Name
	// holds the identifier name, the decoded string, or the raw numeric
	// literal; Number is set for numeric keys only.
	PropertyKey struct {
		Span
		Kind   PropertyKeyKind
		Name   string
		Number float64
	}
)
