// File: codec.go
// Title: Tuple Encoding
// Description: JSON and gob support for the immutable tuples. JSON uses the
//              element names as keys: {"first":..,"second":..}.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: JSON encoding
// - 2026-10-13 v0.1.1: gob encoding and strict decoding

package tuple

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
)

type pairWire[F, S any] struct {
	First  F `json:"first"`
	Second S `json:"second"`
}

type tripleWire[F, S, T any] struct {
	First  F `json:"first"`
	Second S `json:"second"`
	Third  T `json:"third"`
}

type quadrupleWire[F, S, T, U any] struct {
	First  F `json:"first"`
	Second S `json:"second"`
	Third  T `json:"third"`
	Fourth U `json:"fourth"`
}

func gobEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// MarshalJSON implements json.Marshaler
func (p Pair[F, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(pairWire[F, S]{First: p.first, Second: p.second})
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Pair[F, S]) UnmarshalJSON(data []byte) error {
	var w pairWire[F, S]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.first, p.second = w.First, w.Second
	return nil
}

// GobEncode implements gob.GobEncoder
func (p Pair[F, S]) GobEncode() ([]byte, error) {
	return gobEncode(pairWire[F, S]{First: p.first, Second: p.second})
}

// GobDecode implements gob.GobDecoder
func (p *Pair[F, S]) GobDecode(data []byte) error {
	var w pairWire[F, S]
	if err := gobDecode(data, &w); err != nil {
		return err
	}
	p.first, p.second = w.First, w.Second
	return nil
}

// MarshalJSON implements json.Marshaler
func (p StrictPair[F, S]) MarshalJSON() ([]byte, error) {
	return p.pair.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler and rejects nil elements
func (p *StrictPair[F, S]) UnmarshalJSON(data []byte) error {
	var plain Pair[F, S]
	if err := plain.UnmarshalJSON(data); err != nil {
		return err
	}
	strict, err := NewStrictPair(plain.first, plain.second)
	if err != nil {
		return err
	}
	*p = strict
	return nil
}

// MarshalJSON implements json.Marshaler
func (t Triple[F, S, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(tripleWire[F, S, T]{First: t.first, Second: t.second, Third: t.third})
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Triple[F, S, T]) UnmarshalJSON(data []byte) error {
	var w tripleWire[F, S, T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.first, t.second, t.third = w.First, w.Second, w.Third
	return nil
}

// GobEncode implements gob.GobEncoder
func (t Triple[F, S, T]) GobEncode() ([]byte, error) {
	return gobEncode(tripleWire[F, S, T]{First: t.first, Second: t.second, Third: t.third})
}

// GobDecode implements gob.GobDecoder
func (t *Triple[F, S, T]) GobDecode(data []byte) error {
	var w tripleWire[F, S, T]
	if err := gobDecode(data, &w); err != nil {
		return err
	}
	t.first, t.second, t.third = w.First, w.Second, w.Third
	return nil
}

// MarshalJSON implements json.Marshaler
func (q Quadruple[F, S, T, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(quadrupleWire[F, S, T, U]{First: q.first, Second: q.second, Third: q.third, Fourth: q.fourth})
}

// UnmarshalJSON implements json.Unmarshaler
func (q *Quadruple[F, S, T, U]) UnmarshalJSON(data []byte) error {
	var w quadrupleWire[F, S, T, U]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	q.first, q.second, q.third, q.fourth = w.First, w.Second, w.Third, w.Fourth
	return nil
}

// GobEncode implements gob.GobEncoder
func (q Quadruple[F, S, T, U]) GobEncode() ([]byte, error) {
	return gobEncode(quadrupleWire[F, S, T, U]{First: q.first, Second: q.second, Third: q.third, Fourth: q.fourth})
}

// GobDecode implements gob.GobDecoder
func (q *Quadruple[F, S, T, U]) GobDecode(data []byte) error {
	var w quadrupleWire[F, S, T, U]
	if err := gobDecode(data, &w); err != nil {
		return err
	}
	q.first, q.second, q.third, q.fourth = w.First, w.Second, w.Third, w.Fourth
	return nil
}
