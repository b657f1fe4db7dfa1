package multibase

import (
	"unicode/utf8"

	"github.com/wippyai/multibase/errors"
)

// Format encodes data with the given base and prepends the base's prefix
// code point, producing a self-describing multibase string.
func Format(base Base, data []byte) (string, error) {
	def, ok := DefaultRegistry().lookup(base)
	if !ok {
		return "", errors.UnknownBase(errors.StageFormat, string(base))
	}
	if len(data) == 0 {
		return "", errors.EmptyPayload(string(base))
	}
	return string(def.Prefix) + def.Codec.Encode(data), nil
}

// FormatBody encodes data with the given base and returns the bare body,
// with no prefix attached. Zero-length data is rejected with
// errors.KindEmptyPayload: a multibase string carrying no body is
// indistinguishable from malformed input, so empty payloads never
// round-trip.
func FormatBody(base Base, data []byte) (string, error) {
	def, ok := DefaultRegistry().lookup(base)
	if !ok {
		return "", errors.UnknownBase(errors.StageFormat, string(base))
	}
	if len(data) == 0 {
		return "", errors.EmptyPayload(string(base))
	}
	return def.Codec.Encode(data), nil
}

// ParseBody decodes a bare body previously produced by the given base. The
// prefix, if any, must already be stripped; callers with a prefixed string
// want Parse instead.
func ParseBody(base Base, body string) ([]byte, error) {
	def, ok := DefaultRegistry().lookup(base)
	if !ok {
		return nil, errors.UnknownBase(errors.StageParse, string(base))
	}
	return def.Codec.Decode(body)
}

// Parse decodes a multibase string: the first code point selects the base,
// the remainder is its body. Strings shorter than two code points fail with
// errors.KindTooShort, unassigned prefixes with errors.KindUnknownPrefix.
func Parse(s string) ([]byte, error) {
	prefix, body, err := splitPrefix(s)
	if err != nil {
		return nil, err
	}
	def, ok := DefaultRegistry().lookupPrefix(prefix)
	if !ok {
		return nil, errors.UnknownPrefix(errors.StageParse, prefix)
	}
	return ParseBody(def.Base, body)
}

// Inspection describes a parsed multibase string.
type Inspection struct {
	Prefix rune   // leading code point
	Base   Base   // identifier the prefix resolved to
	Data   []byte // decoded payload
}

// Inspect decodes a multibase string like Parse and additionally reports
// which prefix and base produced it.
func Inspect(s string) (Inspection, error) {
	prefix, body, err := splitPrefix(s)
	if err != nil {
		return Inspection{}, err
	}
	def, ok := DefaultRegistry().lookupPrefix(prefix)
	if !ok {
		return Inspection{}, errors.UnknownPrefix(errors.StageParse, prefix)
	}
	data, err := ParseBody(def.Base, body)
	if err != nil {
		return Inspection{}, err
	}
	return Inspection{Prefix: prefix, Base: def.Base, Data: data}, nil
}

// splitPrefix separates the leading code point from the body. A string with
// fewer than two code points has no decodable body.
func splitPrefix(s string) (rune, string, error) {
	prefix, size := utf8.DecodeRuneInString(s)
	if size == 0 || len(s) <= size {
		chars := 0
		if size > 0 {
			chars = 1
		}
		return 0, "", errors.TooShort(chars)
	}
	return prefix, s[size:], nil
}
