// Package sqlexpr provides the expression-resolution substrate of quarry's
// SQL layer: the two-state lifecycle a named reference moves through between
// parsing and planning.
//
// Parsing emits UnresolvedAttribute nodes that carry only a source location,
// the raw reference text, and child sub-expressions. An external analyzer
// binds each reference against known fields and substitutes a FieldAttribute
// in its place; the unresolved node is discarded. There is no mutation path
// between the two states and no partially-resolved state.
//
// Resolved-only properties (name, id, data type, attribute view) are defined
// only on the resolved state. Reading one through the NamedExpression
// interface on an unresolved node returns an UnresolvedError: a contract
// violation by the caller, never a recoverable condition and never a
// default value.
//
// Every node owns an ExpressionId minted at construction through an
// IDAllocator, so structurally identical expressions stay distinguishable.
// Allocators are injected rather than ambient; tests can supply a
// deterministic source.
package sqlexpr
