// File: codec.go
// Title: Object Codecs
// Description: Codec implementations for the serialization envelope: gob,
//              JSON, YAML, TOML and protobuf.
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: gob and JSON codecs
// - 2026-10-14 v0.1.1: YAML, TOML and protobuf codecs

package bytex

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// Codec turns values into payload bytes and back. The ID is written into
// every envelope and must be unique within a Serializer.
type Codec interface {
	ID() byte
	Name() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// Codec identifiers of the built-in codecs
const (
	GobID      byte = 1
	JSONID     byte = 2
	YAMLID     byte = 3
	TOMLID     byte = 4
	ProtobufID byte = 5
)

// GobCodec encodes with encoding/gob. Interface typed values must be
// registered with gob.Register by the caller.
type GobCodec struct{}

func (GobCodec) ID() byte     { return GobID }
func (GobCodec) Name() string { return "gob" }

func (GobCodec) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobCodec) Unmarshal(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// JSONCodec encodes with encoding/json
type JSONCodec struct{}

func (JSONCodec) ID() byte     { return JSONID }
func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v interface{}) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

// YAMLCodec encodes with gopkg.in/yaml.v3
type YAMLCodec struct{}

func (YAMLCodec) ID() byte     { return YAMLID }
func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Marshal(v interface{}) ([]byte, error) { return yaml.Marshal(v) }

func (YAMLCodec) Unmarshal(data []byte, v interface{}) error { return yaml.Unmarshal(data, v) }

// TOMLCodec encodes with github.com/BurntSushi/toml. TOML documents are
// tables, so only structs and maps can be encoded.
type TOMLCodec struct{}

func (TOMLCodec) ID() byte     { return TOMLID }
func (TOMLCodec) Name() string { return "toml" }

func (TOMLCodec) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (TOMLCodec) Unmarshal(data []byte, v interface{}) error {
	_, err := toml.Decode(string(data), v)
	return err
}

// ProtobufCodec encodes proto.Message values with google.golang.org/protobuf
type ProtobufCodec struct{}

func (ProtobufCodec) ID() byte     { return ProtobufID }
func (ProtobufCodec) Name() string { return "protobuf" }

func (ProtobufCodec) Marshal(v interface{}) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("%T is not a proto.Message", v)
	}
	return proto.Marshal(msg)
}

func (ProtobufCodec) Unmarshal(data []byte, v interface{}) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("%T is not a proto.Message", v)
	}
	return proto.Unmarshal(data, msg)
}
