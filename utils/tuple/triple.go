// File: triple.go
// Title: Triple Tuples
// Description: Three element tuples in plain, mutable, strict and strict
//              mutable variants.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package tuple

import "fmt"

// Triple is an immutable three element tuple. Any element may be nil.
type Triple[F, S, T any] struct {
	first  F
	second S
	third  T
}

// NewTriple creates a Triple
func NewTriple[F, S, T any](first F, second S, third T) Triple[F, S, T] {
	return Triple[F, S, T]{first: first, second: second, third: third}
}

// First returns the first element
func (t Triple[F, S, T]) First() F { return t.first }

// Second returns the second element
func (t Triple[F, S, T]) Second() S { return t.second }

// Third returns the third element
func (t Triple[F, S, T]) Third() T { return t.third }

// Values returns all elements
func (t Triple[F, S, T]) Values() (F, S, T) { return t.first, t.second, t.third }

// Copy returns an equal Triple
func (t Triple[F, S, T]) Copy() Triple[F, S, T] { return t }

// WithFirst returns a copy with the first element replaced
func (t Triple[F, S, T]) WithFirst(first F) Triple[F, S, T] {
	t.first = first
	return t
}

// WithSecond returns a copy with the second element replaced
func (t Triple[F, S, T]) WithSecond(second S) Triple[F, S, T] {
	t.second = second
	return t
}

// WithThird returns a copy with the third element replaced
func (t Triple[F, S, T]) WithThird(third T) Triple[F, S, T] {
	t.third = third
	return t
}

// ToMutable returns a mutable copy
func (t Triple[F, S, T]) ToMutable() *MutableTriple[F, S, T] {
	return &MutableTriple[F, S, T]{first: t.first, second: t.second, third: t.third}
}

func (t Triple[F, S, T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.first, t.second, t.third)
}

// MutableTriple is a three element tuple with setters
type MutableTriple[F, S, T any] struct {
	first  F
	second S
	third  T
}

// NewMutableTriple creates a MutableTriple
func NewMutableTriple[F, S, T any](first F, second S, third T) *MutableTriple[F, S, T] {
	return &MutableTriple[F, S, T]{first: first, second: second, third: third}
}

// First returns the first element
func (t *MutableTriple[F, S, T]) First() F { return t.first }

// Second returns the second element
func (t *MutableTriple[F, S, T]) Second() S { return t.second }

// Third returns the third element
func (t *MutableTriple[F, S, T]) Third() T { return t.third }

// SetFirst replaces the first element
func (t *MutableTriple[F, S, T]) SetFirst(first F) { t.first = first }

// SetSecond replaces the second element
func (t *MutableTriple[F, S, T]) SetSecond(second S) { t.second = second }

// SetThird replaces the third element
func (t *MutableTriple[F, S, T]) SetThird(third T) { t.third = third }

// Copy returns an independent MutableTriple with the same elements
func (t *MutableTriple[F, S, T]) Copy() *MutableTriple[F, S, T] {
	c := *t
	return &c
}

// ToTriple returns an immutable snapshot
func (t *MutableTriple[F, S, T]) ToTriple() Triple[F, S, T] {
	return Triple[F, S, T]{first: t.first, second: t.second, third: t.third}
}

func (t *MutableTriple[F, S, T]) String() string {
	return t.ToTriple().String()
}

// StrictTriple is an immutable Triple whose elements are never nil
type StrictTriple[F, S, T any] struct {
	value Triple[F, S, T]
}

// NewStrictTriple creates a StrictTriple, failing with a null-argument error
// when an element is nil.
func NewStrictTriple[F, S, T any](first F, second S, third T) (StrictTriple[F, S, T], error) {
	if err := requireElements("NewStrictTriple", first, second, third); err != nil {
		return StrictTriple[F, S, T]{}, err
	}
	return StrictTriple[F, S, T]{value: NewTriple(first, second, third)}, nil
}

// First returns the first element
func (t StrictTriple[F, S, T]) First() F { return t.value.first }

// Second returns the second element
func (t StrictTriple[F, S, T]) Second() S { return t.value.second }

// Third returns the third element
func (t StrictTriple[F, S, T]) Third() T { return t.value.third }

// Copy returns an equal StrictTriple
func (t StrictTriple[F, S, T]) Copy() StrictTriple[F, S, T] { return t }

// WithFirst returns a copy with the first element replaced
func (t StrictTriple[F, S, T]) WithFirst(first F) (StrictTriple[F, S, T], error) {
	return NewStrictTriple(first, t.value.second, t.value.third)
}

// WithSecond returns a copy with the second element replaced
func (t StrictTriple[F, S, T]) WithSecond(second S) (StrictTriple[F, S, T], error) {
	return NewStrictTriple(t.value.first, second, t.value.third)
}

// WithThird returns a copy with the third element replaced
func (t StrictTriple[F, S, T]) WithThird(third T) (StrictTriple[F, S, T], error) {
	return NewStrictTriple(t.value.first, t.value.second, third)
}

// ToTriple drops the non-nil guarantee
func (t StrictTriple[F, S, T]) ToTriple() Triple[F, S, T] { return t.value }

// ToMutable returns a strict mutable copy
func (t StrictTriple[F, S, T]) ToMutable() *StrictMutableTriple[F, S, T] {
	return &StrictMutableTriple[F, S, T]{value: t.value}
}

func (t StrictTriple[F, S, T]) String() string { return t.value.String() }

// StrictMutableTriple is a mutable Triple whose setters reject nil
type StrictMutableTriple[F, S, T any] struct {
	value Triple[F, S, T]
}

// NewStrictMutableTriple creates a StrictMutableTriple, failing with a
// null-argument error when an element is nil.
func NewStrictMutableTriple[F, S, T any](first F, second S, third T) (*StrictMutableTriple[F, S, T], error) {
	if err := requireElements("NewStrictMutableTriple", first, second, third); err != nil {
		return nil, err
	}
	return &StrictMutableTriple[F, S, T]{value: NewTriple(first, second, third)}, nil
}

// First returns the first element
func (t *StrictMutableTriple[F, S, T]) First() F { return t.value.first }

// Second returns the second element
func (t *StrictMutableTriple[F, S, T]) Second() S { return t.value.second }

// Third returns the third element
func (t *StrictMutableTriple[F, S, T]) Third() T { return t.value.third }

// SetFirst replaces the first element unless it is nil
func (t *StrictMutableTriple[F, S, T]) SetFirst(first F) error {
	if err := requireElement("SetFirst", "first", first); err != nil {
		return err
	}
	t.value.first = first
	return nil
}

// SetSecond replaces the second element unless it is nil
func (t *StrictMutableTriple[F, S, T]) SetSecond(second S) error {
	if err := requireElement("SetSecond", "second", second); err != nil {
		return err
	}
	t.value.second = second
	return nil
}

// SetThird replaces the third element unless it is nil
func (t *StrictMutableTriple[F, S, T]) SetThird(third T) error {
	if err := requireElement("SetThird", "third", third); err != nil {
		return err
	}
	t.value.third = third
	return nil
}

// Copy returns an independent StrictMutableTriple
func (t *StrictMutableTriple[F, S, T]) Copy() *StrictMutableTriple[F, S, T] {
	c := *t
	return &c
}

// ToTriple returns a strict immutable snapshot
func (t *StrictMutableTriple[F, S, T]) ToTriple() StrictTriple[F, S, T] {
	return StrictTriple[F, S, T]{value: t.value}
}

func (t *StrictMutableTriple[F, S, T]) String() string { return t.value.String() }
