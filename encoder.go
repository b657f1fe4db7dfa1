package multibase

import (
	"github.com/wippyai/multibase/errors"
)

// Encoder is a base resolved against the default registry once, for callers
// that encode many payloads with the same base without paying a registry
// lookup per call. The zero Encoder is not usable; construct with NewEncoder.
type Encoder struct {
	def Definition
}

// NewEncoder resolves base in the default registry.
func NewEncoder(base Base) (Encoder, error) {
	def, ok := DefaultRegistry().lookup(base)
	if !ok {
		return Encoder{}, errors.UnknownBase(errors.StageLookup, string(base))
	}
	return Encoder{def: def}, nil
}

// Base returns the encoder's base identifier.
func (e Encoder) Base() Base {
	return e.def.Base
}

// Prefix returns the encoder's prefix code point.
func (e Encoder) Prefix() rune {
	return e.def.Prefix
}

// Encode produces the prefixed multibase string for data, like Format.
func (e Encoder) Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.EmptyPayload(string(e.def.Base))
	}
	return string(e.def.Prefix) + e.def.Codec.Encode(data), nil
}

// EncodeBody produces the bare body for data, like FormatBody.
func (e Encoder) EncodeBody(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.EmptyPayload(string(e.def.Base))
	}
	return e.def.Codec.Encode(data), nil
}

// Decoder is the decoding counterpart of Encoder: a base resolved once for
// callers that decode many bare bodies produced by that base. Prefixed
// strings carry their own base selection and belong to Parse.
type Decoder struct {
	def Definition
}

// NewDecoder resolves base in the default registry.
func NewDecoder(base Base) (Decoder, error) {
	def, ok := DefaultRegistry().lookup(base)
	if !ok {
		return Decoder{}, errors.UnknownBase(errors.StageLookup, string(base))
	}
	return Decoder{def: def}, nil
}

// Base returns the decoder's base identifier.
func (d Decoder) Base() Base {
	return d.def.Base
}

// Decode reconstructs the bytes of a bare body, like ParseBody.
func (d Decoder) Decode(body string) ([]byte, error) {
	return d.def.Codec.Decode(body)
}
