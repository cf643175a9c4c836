// File: pair.go
// Title: Pair Tuples
// Description: Two element tuples in plain, mutable, strict and strict
//              mutable variants.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package tuple

import "fmt"

// Pair is an immutable two element tuple. Either element may be nil.
type Pair[F, S any] struct {
	first  F
	second S
}

// NewPair creates a Pair
func NewPair[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{first: first, second: second}
}

// First returns the first element
func (p Pair[F, S]) First() F { return p.first }

// Second returns the second element
func (p Pair[F, S]) Second() S { return p.second }

// Values returns both elements
func (p Pair[F, S]) Values() (F, S) { return p.first, p.second }

// Copy returns an equal Pair
func (p Pair[F, S]) Copy() Pair[F, S] { return p }

// WithFirst returns a copy with the first element replaced
func (p Pair[F, S]) WithFirst(first F) Pair[F, S] {
	p.first = first
	return p
}

// WithSecond returns a copy with the second element replaced
func (p Pair[F, S]) WithSecond(second S) Pair[F, S] {
	p.second = second
	return p
}

// ToMutable returns a mutable copy
func (p Pair[F, S]) ToMutable() *MutablePair[F, S] {
	return &MutablePair[F, S]{first: p.first, second: p.second}
}

func (p Pair[F, S]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// MutablePair is a two element tuple with setters
type MutablePair[F, S any] struct {
	first  F
	second S
}

// NewMutablePair creates a MutablePair
func NewMutablePair[F, S any](first F, second S) *MutablePair[F, S] {
	return &MutablePair[F, S]{first: first, second: second}
}

// First returns the first element
func (p *MutablePair[F, S]) First() F { return p.first }

// Second returns the second element
func (p *MutablePair[F, S]) Second() S { return p.second }

// SetFirst replaces the first element
func (p *MutablePair[F, S]) SetFirst(first F) { p.first = first }

// SetSecond replaces the second element
func (p *MutablePair[F, S]) SetSecond(second S) { p.second = second }

// Copy returns an independent MutablePair with the same elements
func (p *MutablePair[F, S]) Copy() *MutablePair[F, S] {
	c := *p
	return &c
}

// ToPair returns an immutable snapshot
func (p *MutablePair[F, S]) ToPair() Pair[F, S] {
	return Pair[F, S]{first: p.first, second: p.second}
}

func (p *MutablePair[F, S]) String() string {
	return p.ToPair().String()
}

// StrictPair is an immutable Pair whose elements are never nil
type StrictPair[F, S any] struct {
	pair Pair[F, S]
}

// NewStrictPair creates a StrictPair, failing with a null-argument error when
// an element is nil.
func NewStrictPair[F, S any](first F, second S) (StrictPair[F, S], error) {
	if err := requireElements("NewStrictPair", first, second); err != nil {
		return StrictPair[F, S]{}, err
	}
	return StrictPair[F, S]{pair: NewPair(first, second)}, nil
}

// First returns the first element
func (p StrictPair[F, S]) First() F { return p.pair.first }

// Second returns the second element
func (p StrictPair[F, S]) Second() S { return p.pair.second }

// Copy returns an equal StrictPair
func (p StrictPair[F, S]) Copy() StrictPair[F, S] { return p }

// WithFirst returns a copy with the first element replaced
func (p StrictPair[F, S]) WithFirst(first F) (StrictPair[F, S], error) {
	return NewStrictPair(first, p.pair.second)
}

// WithSecond returns a copy with the second element replaced
func (p StrictPair[F, S]) WithSecond(second S) (StrictPair[F, S], error) {
	return NewStrictPair(p.pair.first, second)
}

// ToPair drops the non-nil guarantee
func (p StrictPair[F, S]) ToPair() Pair[F, S] { return p.pair }

// ToMutable returns a strict mutable copy
func (p StrictPair[F, S]) ToMutable() *StrictMutablePair[F, S] {
	return &StrictMutablePair[F, S]{pair: p.pair}
}

func (p StrictPair[F, S]) String() string { return p.pair.String() }

// StrictMutablePair is a mutable Pair whose setters reject nil
type StrictMutablePair[F, S any] struct {
	pair Pair[F, S]
}

// NewStrictMutablePair creates a StrictMutablePair, failing with a
// null-argument error when an element is nil.
func NewStrictMutablePair[F, S any](first F, second S) (*StrictMutablePair[F, S], error) {
	if err := requireElements("NewStrictMutablePair", first, second); err != nil {
		return nil, err
	}
	return &StrictMutablePair[F, S]{pair: NewPair(first, second)}, nil
}

// First returns the first element
func (p *StrictMutablePair[F, S]) First() F { return p.pair.first }

// Second returns the second element
func (p *StrictMutablePair[F, S]) Second() S { return p.pair.second }

// SetFirst replaces the first element unless it is nil
func (p *StrictMutablePair[F, S]) SetFirst(first F) error {
	if err := requireElement("SetFirst", "first", first); err != nil {
		return err
	}
	p.pair.first = first
	return nil
}

// SetSecond replaces the second element unless it is nil
func (p *StrictMutablePair[F, S]) SetSecond(second S) error {
	if err := requireElement("SetSecond", "second", second); err != nil {
		return err
	}
	p.pair.second = second
	return nil
}

// Copy returns an independent StrictMutablePair
func (p *StrictMutablePair[F, S]) Copy() *StrictMutablePair[F, S] {
	c := *p
	return &c
}

// ToPair returns a strict immutable snapshot
func (p *StrictMutablePair[F, S]) ToPair() StrictPair[F, S] {
	return StrictPair[F, S]{pair: p.pair}
}

func (p *StrictMutablePair[F, S]) String() string { return p.pair.String() }
