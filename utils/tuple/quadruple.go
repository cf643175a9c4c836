// File: quadruple.go
// Title: Quadruple Tuples
// Description: Four element tuples in plain, mutable, strict and strict
//              mutable variants.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package tuple

import "fmt"

// Quadruple is an immutable four element tuple. Any element may be nil.
type Quadruple[F, S, T, U any] struct {
	first  F
	second S
	third  T
	fourth U
}

// NewQuadruple creates a Quadruple
func NewQuadruple[F, S, T, U any](first F, second S, third T, fourth U) Quadruple[F, S, T, U] {
	return Quadruple[F, S, T, U]{first: first, second: second, third: third, fourth: fourth}
}

// First returns the first element
func (t Quadruple[F, S, T, U]) First() F { return t.first }

// Second returns the second element
func (t Quadruple[F, S, T, U]) Second() S { return t.second }

// Third returns the third element
func (t Quadruple[F, S, T, U]) Third() T { return t.third }

// Fourth returns the fourth element
func (t Quadruple[F, S, T, U]) Fourth() U { return t.fourth }

// Values returns all elements
func (t Quadruple[F, S, T, U]) Values() (F, S, T, U) { return t.first, t.second, t.third, t.fourth }

// Copy returns an equal Quadruple
func (t Quadruple[F, S, T, U]) Copy() Quadruple[F, S, T, U] { return t }

// WithFirst returns a copy with the first element replaced
func (t Quadruple[F, S, T, U]) WithFirst(first F) Quadruple[F, S, T, U] {
	t.first = first
	return t
}

// WithSecond returns a copy with the second element replaced
func (t Quadruple[F, S, T, U]) WithSecond(second S) Quadruple[F, S, T, U] {
	t.second = second
	return t
}

// WithThird returns a copy with the third element replaced
func (t Quadruple[F, S, T, U]) WithThird(third T) Quadruple[F, S, T, U] {
	t.third = third
	return t
}

// WithFourth returns a copy with the fourth element replaced
func (t Quadruple[F, S, T, U]) WithFourth(fourth U) Quadruple[F, S, T, U] {
	t.fourth = fourth
	return t
}

// ToMutable returns a mutable copy
func (t Quadruple[F, S, T, U]) ToMutable() *MutableQuadruple[F, S, T, U] {
	return &MutableQuadruple[F, S, T, U]{first: t.first, second: t.second, third: t.third, fourth: t.fourth}
}

func (t Quadruple[F, S, T, U]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.first, t.second, t.third, t.fourth)
}

// MutableQuadruple is a four element tuple with setters
type MutableQuadruple[F, S, T, U any] struct {
	first  F
	second S
	third  T
	fourth U
}

// NewMutableQuadruple creates a MutableQuadruple
func NewMutableQuadruple[F, S, T, U any](first F, second S, third T, fourth U) *MutableQuadruple[F, S, T, U] {
	return &MutableQuadruple[F, S, T, U]{first: first, second: second, third: third, fourth: fourth}
}

// First returns the first element
func (t *MutableQuadruple[F, S, T, U]) First() F { return t.first }

// Second returns the second element
func (t *MutableQuadruple[F, S, T, U]) Second() S { return t.second }

// Third returns the third element
func (t *MutableQuadruple[F, S, T, U]) Third() T { return t.third }

// Fourth returns the fourth element
func (t *MutableQuadruple[F, S, T, U]) Fourth() U { return t.fourth }

// SetFirst replaces the first element
func (t *MutableQuadruple[F, S, T, U]) SetFirst(first F) { t.first = first }

// SetSecond replaces the second element
func (t *MutableQuadruple[F, S, T, U]) SetSecond(second S) { t.second = second }

// SetThird replaces the third element
func (t *MutableQuadruple[F, S, T, U]) SetThird(third T) { t.third = third }

// SetFourth replaces the fourth element
func (t *MutableQuadruple[F, S, T, U]) SetFourth(fourth U) { t.fourth = fourth }

// Copy returns an independent MutableQuadruple with the same elements
func (t *MutableQuadruple[F, S, T, U]) Copy() *MutableQuadruple[F, S, T, U] {
	c := *t
	return &c
}

// ToQuadruple returns an immutable snapshot
func (t *MutableQuadruple[F, S, T, U]) ToQuadruple() Quadruple[F, S, T, U] {
	return Quadruple[F, S, T, U]{first: t.first, second: t.second, third: t.third, fourth: t.fourth}
}

func (t *MutableQuadruple[F, S, T, U]) String() string {
	return t.ToQuadruple().String()
}

// StrictQuadruple is an immutable Quadruple whose elements are never nil
type StrictQuadruple[F, S, T, U any] struct {
	value Quadruple[F, S, T, U]
}

// NewStrictQuadruple creates a StrictQuadruple, failing with a null-argument error
// when an element is nil.
func NewStrictQuadruple[F, S, T, U any](first F, second S, third T, fourth U) (StrictQuadruple[F, S, T, U], error) {
	if err := requireElements("NewStrictQuadruple", first, second, third, fourth); err != nil {
		return StrictQuadruple[F, S, T, U]{}, err
	}
	return StrictQuadruple[F, S, T, U]{value: NewQuadruple(first, second, third, fourth)}, nil
}

// First returns the first element
func (t StrictQuadruple[F, S, T, U]) First() F { return t.value.first }

// Second returns the second element
func (t StrictQuadruple[F, S, T, U]) Second() S { return t.value.second }

// Third returns the third element
func (t StrictQuadruple[F, S, T, U]) Third() T { return t.value.third }

// Fourth returns the fourth element
func (t StrictQuadruple[F, S, T, U]) Fourth() U { return t.value.fourth }

// Copy returns an equal StrictQuadruple
func (t StrictQuadruple[F, S, T, U]) Copy() StrictQuadruple[F, S, T, U] { return t }

// WithFirst returns a copy with the first element replaced
func (t StrictQuadruple[F, S, T, U]) WithFirst(first F) (StrictQuadruple[F, S, T, U], error) {
	return NewStrictQuadruple(first, t.value.second, t.value.third, t.value.fourth)
}

// WithSecond returns a copy with the second element replaced
func (t StrictQuadruple[F, S, T, U]) WithSecond(second S) (StrictQuadruple[F, S, T, U], error) {
	return NewStrictQuadruple(t.value.first, second, t.value.third, t.value.fourth)
}

// WithThird returns a copy with the third element replaced
func (t StrictQuadruple[F, S, T, U]) WithThird(third T) (StrictQuadruple[F, S, T, U], error) {
	return NewStrictQuadruple(t.value.first, t.value.second, third, t.value.fourth)
}

// WithFourth returns a copy with the fourth element replaced
func (t StrictQuadruple[F, S, T, U]) WithFourth(fourth U) (StrictQuadruple[F, S, T, U], error) {
	return NewStrictQuadruple(t.value.first, t.value.second, t.value.third, fourth)
}

// ToQuadruple drops the non-nil guarantee
func (t StrictQuadruple[F, S, T, U]) ToQuadruple() Quadruple[F, S, T, U] { return t.value }

// ToMutable returns a strict mutable copy
func (t StrictQuadruple[F, S, T, U]) ToMutable() *StrictMutableQuadruple[F, S, T, U] {
	return &StrictMutableQuadruple[F, S, T, U]{value: t.value}
}

func (t StrictQuadruple[F, S, T, U]) String() string { return t.value.String() }

// StrictMutableQuadruple is a mutable Quadruple whose setters reject nil
type StrictMutableQuadruple[F, S, T, U any] struct {
	value Quadruple[F, S, T, U]
}

// NewStrictMutableQuadruple creates a StrictMutableQuadruple, failing with a
// null-argument error when an element is nil.
func NewStrictMutableQuadruple[F, S, T, U any](first F, second S, third T, fourth U) (*StrictMutableQuadruple[F, S, T, U], error) {
	if err := requireElements("NewStrictMutableQuadruple", first, second, third, fourth); err != nil {
		return nil, err
	}
	return &StrictMutableQuadruple[F, S, T, U]{value: NewQuadruple(first, second, third, fourth)}, nil
}

// First returns the first element
func (t *StrictMutableQuadruple[F, S, T, U]) First() F { return t.value.first }

// Second returns the second element
func (t *StrictMutableQuadruple[F, S, T, U]) Second() S { return t.value.second }

// Third returns the third element
func (t *StrictMutableQuadruple[F, S, T, U]) Third() T { return t.value.third }

// Fourth returns the fourth element
func (t *StrictMutableQuadruple[F, S, T, U]) Fourth() U { return t.value.fourth }

// SetFirst replaces the first element unless it is nil
func (t *StrictMutableQuadruple[F, S, T, U]) SetFirst(first F) error {
	if err := requireElement("SetFirst", "first", first); err != nil {
		return err
	}
	t.value.first = first
	return nil
}

// SetSecond replaces the second element unless it is nil
func (t *StrictMutableQuadruple[F, S, T, U]) SetSecond(second S) error {
	if err := requireElement("SetSecond", "second", second); err != nil {
		return err
	}
	t.value.second = second
	return nil
}

// SetThird replaces the third element unless it is nil
func (t *StrictMutableQuadruple[F, S, T, U]) SetThird(third T) error {
	if err := requireElement("SetThird", "third", third); err != nil {
		return err
	}
	t.value.third = third
	return nil
}

// SetFourth replaces the fourth element unless it is nil
func (t *StrictMutableQuadruple[F, S, T, U]) SetFourth(fourth U) error {
	if err := requireElement("SetFourth", "fourth", fourth); err != nil {
		return err
	}
	t.value.fourth = fourth
	return nil
}

// Copy returns an independent StrictMutableQuadruple
func (t *StrictMutableQuadruple[F, S, T, U]) Copy() *StrictMutableQuadruple[F, S, T, U] {
	c := *t
	return &c
}

// ToQuadruple returns a strict immutable snapshot
func (t *StrictMutableQuadruple[F, S, T, U]) ToQuadruple() StrictQuadruple[F, S, T, U] {
	return StrictQuadruple[F, S, T, U]{value: t.value}
}

func (t *StrictMutableQuadruple[F, S, T, U]) String() string { return t.value.String() }
