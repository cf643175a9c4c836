// Package bytex converts between byte buffers and numbers, text and objects.
//
// Integers use fixed width big-endian layouts: 4 bytes for int32, 8 bytes for
// int64. Big integers are unsigned and padded to 32 bytes.
//
// Objects are serialized into a small envelope, "LZ" | version | codec id |
// payload, so BytesToObject can decode data written with any registered codec:
//
//	data, err := bytex.ObjectToBytesWith("yaml", cfg)
//	...
//	var restored Settings
//	err = bytex.BytesToObject(data, &restored)
//
// Failures of the underlying codec are returned as SERIALIZATION_FAILED
// errors that unwrap to the codec error.
package bytex
