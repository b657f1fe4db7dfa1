package basecodec

import (
	"strings"

	"github.com/wippyai/multibase/basecodec/internal/alphabet"
	"github.com/wippyai/multibase/errors"
)

// RFC 4648 base32 alphabets, standard and extended-hex, in both cases.
const (
	base32StdLower = "abcdefghijklmnopqrstuvwxyz234567"
	base32StdUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	base32HexLower = "0123456789abcdefghijklmnopqrstuv"
	base32HexUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

// Base32Config selects one of the eight RFC 4648 base32 variants.
type Base32Config struct {
	HexAlphabet bool // extended-hex alphabet instead of the standard one
	Upper       bool // upper-case output
	Pad         bool // '=' padding to 8-character groups
}

type base32Codec struct {
	name string
	tbl  *alphabet.Table
	pad  bool
}

// NewBase32 returns a base32 codec for the given variant. The variant fixes
// the encoded output; decoding folds letter case and accepts both padded and
// unpadded input for all variants.
func NewBase32(name string, cfg Base32Config) Codec {
	var symbols string
	switch {
	case cfg.HexAlphabet && cfg.Upper:
		symbols = base32HexUpper
	case cfg.HexAlphabet:
		symbols = base32HexLower
	case cfg.Upper:
		symbols = base32StdUpper
	default:
		symbols = base32StdLower
	}
	return base32Codec{name: name, tbl: alphabet.NewFold(symbols), pad: cfg.Pad}
}

func (c base32Codec) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	n := (len(data)*8 + 4) / 5
	if c.pad {
		n = (len(data) + 4) / 5 * 8
	}
	dst := make([]byte, 0, n)

	var acc, bits uint
	for _, b := range data {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			dst = append(dst, c.tbl.Symbol(int(acc>>bits)&31))
		}
	}
	if bits > 0 {
		dst = append(dst, c.tbl.Symbol(int(acc<<(5-bits))&31))
	}

	if c.pad {
		for len(dst)%8 != 0 {
			dst = append(dst, '=')
		}
	}
	return string(dst)
}

func (c base32Codec) Decode(body string) ([]byte, error) {
	body = strings.TrimRight(body, "=")

	// 5-bit packing leaves these as the only reachable group remainders.
	switch len(body) % 8 {
	case 1, 3, 6:
		return nil, errors.InvalidLength(c.name, len(body), "impossible base32 remainder")
	}

	data := make([]byte, 0, len(body)*5/8)
	var acc, bits uint
	for i := 0; i < len(body); i++ {
		v, ok := c.tbl.Index(body[i])
		if !ok {
			return nil, errors.InvalidSymbol(c.name, rune(body[i]), i)
		}
		acc = acc<<5 | uint(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			data = append(data, byte(acc>>bits))
		}
	}
	// Remaining bits are the encoder's zero fill; drop them.
	return data, nil
}
