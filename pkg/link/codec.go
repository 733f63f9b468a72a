package link

import "encoding/base64"

// Codec converts between raw bytes and the text placed after the endpoint.
type Codec interface {
	Encode([]byte) (string, error)
	Decode(string) ([]byte, error)
}

// Base64Codec encodes with the standard, padded base64 alphabet.
type Base64Codec struct{}

var _ Codec = Base64Codec{}

// Encode returns the standard base64 encoding of data.
func (Base64Codec) Encode(data []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a standard, padded base64 string.
func (Base64Codec) Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
