// File: serializer.go
// Title: Versioned Object Serialization
// Description: Wraps codec payloads in an envelope so the decoder can pick
//              the codec that wrote them. Layout:
//              "LZ" | version (1 byte) | codec id (1 byte) | payload.
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Named codec selection and envelope inspection

package bytex

import (
	"fmt"
	"sort"
	"sync"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/objectx"
)

const (
	envelopeMagic   = "LZ"
	envelopeVersion = byte(1)
	headerSize      = len(envelopeMagic) + 2
)

// Serializer encodes values into envelopes with a default codec and decodes
// envelopes written by any registered codec. It is safe for concurrent use.
type Serializer struct {
	mu           sync.RWMutex
	byID         map[byte]Codec
	byName       map[string]Codec
	defaultCodec Codec
}

// NewSerializer creates a Serializer that writes with defaultCodec. The
// default codec is registered along with the additional ones.
func NewSerializer(defaultCodec Codec, codecs ...Codec) (*Serializer, error) {
	s := &Serializer{
		byID:         make(map[byte]Codec),
		byName:       make(map[string]Codec),
		defaultCodec: defaultCodec,
	}
	for _, c := range append([]Codec{defaultCodec}, codecs...) {
		if err := s.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

var (
	defaultOnce       sync.Once
	defaultSerializer *Serializer
)

// DefaultSerializer returns the shared Serializer with every built-in codec
// and gob as default.
func DefaultSerializer() *Serializer {
	defaultOnce.Do(func() {
		// built-in ids are distinct, so registration cannot fail
		defaultSerializer, _ = NewSerializer(GobCodec{}, JSONCodec{}, YAMLCodec{}, TOMLCodec{}, ProtobufCodec{})
	})
	return defaultSerializer
}

// Register adds a codec. Codec ids and names must be unique.
func (s *Serializer) Register(c Codec) error {
	if objectx.IsNil(c) {
		return lzerrors.NullArgument(lzerrors.ModuleBytex, "Register", "codec")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byID[c.ID()]; ok {
		return lzerrors.InvalidInput(lzerrors.ModuleBytex, "Register",
			"codec id already registered by "+existing.Name(), c.ID())
	}
	if _, ok := s.byName[c.Name()]; ok {
		return lzerrors.InvalidInput(lzerrors.ModuleBytex, "Register",
			"codec name already registered", c.Name())
	}
	s.byID[c.ID()] = c
	s.byName[c.Name()] = c
	return nil
}

// Codec looks up a registered codec by name
func (s *Serializer) Codec(name string) (Codec, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byName[name]
	return c, ok
}

// Codecs returns the names of all registered codecs, sorted
func (s *Serializer) Codecs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal encodes v with the default codec.
func (s *Serializer) Marshal(v interface{}) ([]byte, error) {
	return s.marshal(s.defaultCodec, v)
}

// MarshalWith encodes v with the named codec.
func (s *Serializer) MarshalWith(codecName string, v interface{}) ([]byte, error) {
	c, ok := s.Codec(codecName)
	if !ok {
		return nil, lzerrors.NotFound(lzerrors.ModuleBytex, "ObjectToBytes", "codec "+codecName)
	}
	return s.marshal(c, v)
}

func (s *Serializer) marshal(c Codec, v interface{}) ([]byte, error) {
	if objectx.IsNil(v) {
		return nil, lzerrors.NullArgument(lzerrors.ModuleBytex, "ObjectToBytes", "value")
	}

	payload, err := c.Marshal(v)
	if err != nil {
		return nil, lzerrors.SerializationFailed(lzerrors.ModuleBytex, "ObjectToBytes", c.Name(), err)
	}

	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, envelopeMagic...)
	out = append(out, envelopeVersion, c.ID())
	return append(out, payload...), nil
}

// Unmarshal decodes an envelope into out, which must be a pointer. The codec
// is taken from the envelope header.
func (s *Serializer) Unmarshal(data []byte, out interface{}) error {
	c, err := s.CodecOf(data)
	if err != nil {
		return err
	}
	if objectx.IsNil(out) {
		return lzerrors.NullArgument(lzerrors.ModuleBytex, "BytesToObject", "out")
	}
	if err := c.Unmarshal(data[headerSize:], out); err != nil {
		return lzerrors.SerializationFailed(lzerrors.ModuleBytex, "BytesToObject", c.Name(), err)
	}
	return nil
}

// CodecOf validates the envelope header of data and returns the codec that
// wrote it.
func (s *Serializer) CodecOf(data []byte) (Codec, error) {
	if len(data) < headerSize || string(data[:len(envelopeMagic)]) != envelopeMagic {
		return nil, lzerrors.SerializationFailed(lzerrors.ModuleBytex, "BytesToObject", "envelope",
			lzerrors.InvalidFormat(lzerrors.ModuleBytex, "BytesToObject", len(data), "LZ envelope header"))
	}
	if version := data[len(envelopeMagic)]; version != envelopeVersion {
		return nil, lzerrors.SerializationFailed(lzerrors.ModuleBytex, "BytesToObject", "envelope",
			lzerrors.OutOfRange(lzerrors.ModuleBytex, "BytesToObject",
				"unsupported envelope version", version, envelopeVersion, envelopeVersion))
	}

	id := data[len(envelopeMagic)+1]
	s.mu.RLock()
	c, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, lzerrors.SerializationFailed(lzerrors.ModuleBytex, "BytesToObject", "envelope",
			lzerrors.NotFound(lzerrors.ModuleBytex, "BytesToObject", fmt.Sprintf("codec id %d", id)))
	}
	return c, nil
}

// ObjectToBytes encodes v with the default serializer and gob.
func ObjectToBytes(v interface{}) ([]byte, error) {
	return DefaultSerializer().Marshal(v)
}

// ObjectToBytesWith encodes v with the default serializer and the named codec.
func ObjectToBytesWith(codecName string, v interface{}) ([]byte, error) {
	return DefaultSerializer().MarshalWith(codecName, v)
}

// BytesToObject decodes data written by ObjectToBytes into out.
func BytesToObject(data []byte, out interface{}) error {
	return DefaultSerializer().Unmarshal(data, out)
}
