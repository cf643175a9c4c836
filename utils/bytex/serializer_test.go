package bytex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	lzerror "github.com/labzen/tool/core/error"
	lzerrors "github.com/labzen/tool/core/errors"
)

type bean struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Age  int    `json:"age" yaml:"age" toml:"age"`
}

func TestObjectRoundTripMap(t *testing.T) {
	params := map[string]int{"a": 1, "b": 2}

	data, err := ObjectToBytes(params)
	require.NoError(t, err)
	assert.Equal(t, "LZ", string(data[:2]))
	assert.Equal(t, GobID, data[3])

	var restored map[string]int
	require.NoError(t, BytesToObject(data, &restored))
	assert.Equal(t, params, restored)
}

func TestObjectRoundTripCodecs(t *testing.T) {
	original := bean{Name: "Dean", Age: 18}

	for _, codec := range []string{"gob", "json", "yaml", "toml"} {
		t.Run(codec, func(t *testing.T) {
			data, err := ObjectToBytesWith(codec, original)
			require.NoError(t, err)

			c, err := DefaultSerializer().CodecOf(data)
			require.NoError(t, err)
			assert.Equal(t, codec, c.Name())

			var restored bean
			require.NoError(t, BytesToObject(data, &restored))
			assert.Equal(t, original, restored)
		})
	}
}

func TestObjectRoundTripProtobuf(t *testing.T) {
	msg := wrapperspb.String("hello")

	data, err := ObjectToBytesWith("protobuf", msg)
	require.NoError(t, err)

	restored := &wrapperspb.StringValue{}
	require.NoError(t, BytesToObject(data, restored))
	assert.True(t, proto.Equal(msg, restored))

	_, err = ObjectToBytesWith("protobuf", bean{})
	assert.True(t, lzerrors.IsSerializationFailed(err))
}

func TestSerializationErrors(t *testing.T) {
	_, err := ObjectToBytes(func() {})
	require.Error(t, err)
	assert.True(t, lzerrors.IsSerializationFailed(err))
	assert.NotNil(t, errors.Unwrap(err), "codec error must be wrapped")

	_, err = ObjectToBytes(nil)
	assert.True(t, lzerrors.IsNullArgument(err))

	_, err = ObjectToBytesWith("xml", bean{})
	assert.True(t, lzerrors.IsNotFound(err))

	_, err = ObjectToBytesWith("toml", 42)
	assert.True(t, lzerrors.IsSerializationFailed(err))

	var out bean
	err = BytesToObject([]byte("XX\x01\x01"), &out)
	assert.True(t, lzerrors.IsSerializationFailed(err))
	assert.True(t, lzerror.HasCode(err, lzerror.CodeInvalidFormat))

	err = BytesToObject([]byte("LZ\x09\x01"), &out)
	assert.True(t, lzerror.HasCode(err, lzerror.CodeValueOutOfRange))

	err = BytesToObject([]byte("LZ\x01\x7f"), &out)
	assert.True(t, lzerror.HasCode(err, lzerror.CodeNotFound))

	err = BytesToObject([]byte("LZ"), &out)
	assert.True(t, lzerrors.IsSerializationFailed(err))

	data, err := ObjectToBytesWith("json", bean{Name: "x"})
	require.NoError(t, err)
	var wrongType []int
	err = BytesToObject(data, &wrongType)
	assert.True(t, lzerrors.IsSerializationFailed(err))
	assert.Equal(t, "json", lzerrors.ExtractDetails(err)["codec"])
}

type upperCodec struct{ JSONCodec }

func (upperCodec) ID() byte     { return 42 }
func (upperCodec) Name() string { return "upper-json" }

func TestSerializerRegistry(t *testing.T) {
	s, err := NewSerializer(JSONCodec{}, upperCodec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"json", "upper-json"}, s.Codecs())

	data, err := s.MarshalWith("upper-json", bean{Name: "a", Age: 1})
	require.NoError(t, err)
	assert.Equal(t, byte(42), data[3])

	var restored bean
	require.NoError(t, s.Unmarshal(data, &restored))
	assert.Equal(t, bean{Name: "a", Age: 1}, restored)

	err = s.Register(JSONCodec{})
	assert.True(t, lzerrors.IsInvalidInput(err))

	_, err = NewSerializer(GobCodec{}, GobCodec{})
	assert.True(t, lzerrors.IsInvalidInput(err))

	// envelopes from a codec this serializer does not know
	gobData, err := ObjectToBytes(bean{})
	require.NoError(t, err)
	assert.Error(t, s.Unmarshal(gobData, &restored))
}
