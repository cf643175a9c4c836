// Package tuple provides generic Pair, Triple and Quadruple types.
//
// Every tuple comes in four variants. The plain type (Pair) is an immutable
// value whose With* methods return modified copies. The mutable type
// (MutablePair) has setters. The strict types (StrictPair, StrictMutablePair)
// reject nil elements with a NULL_ARGUMENT error at construction and on every
// change:
//
//	p := tuple.NewPair[*string, *int](nil, nil) // fine, both elements nil
//	_, err := tuple.NewStrictPair[*string, *int](nil, nil)
//	// errors.IsNullArgument(err) == true
//
// The immutable tuples encode to JSON as {"first":..,"second":..} and support
// encoding/gob.
package tuple
