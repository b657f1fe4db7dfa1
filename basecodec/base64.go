package basecodec

import (
	"strings"

	"github.com/wippyai/multibase/basecodec/internal/alphabet"
	"github.com/wippyai/multibase/errors"
)

// RFC 4648 base64 alphabets. Unlike base32, base64 is case-sensitive: both
// letter cases are distinct symbols.
const (
	base64Std = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// Base64Config selects one of the four RFC 4648 base64 variants.
type Base64Config struct {
	URLAlphabet bool // URL-safe alphabet ('-', '_') instead of '+', '/'
	Pad         bool // '=' padding to 4-character groups
}

type base64Codec struct {
	name string
	tbl  *alphabet.Table
	pad  bool
}

// NewBase64 returns a base64 codec for the given variant. Decoding accepts
// both padded and unpadded input for all variants.
func NewBase64(name string, cfg Base64Config) Codec {
	symbols := base64Std
	if cfg.URLAlphabet {
		symbols = base64URL
	}
	return base64Codec{name: name, tbl: alphabet.New(symbols), pad: cfg.Pad}
}

func (c base64Codec) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	n := (len(data)*8 + 5) / 6
	if c.pad {
		n = (len(data) + 2) / 3 * 4
	}
	dst := make([]byte, 0, n)

	var acc, bits uint
	for _, b := range data {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 6 {
			bits -= 6
			dst = append(dst, c.tbl.Symbol(int(acc>>bits)&63))
		}
	}
	if bits > 0 {
		dst = append(dst, c.tbl.Symbol(int(acc<<(6-bits))&63))
	}

	if c.pad {
		for len(dst)%4 != 0 {
			dst = append(dst, '=')
		}
	}
	return string(dst)
}

func (c base64Codec) Decode(body string) ([]byte, error) {
	body = strings.TrimRight(body, "=")

	// A lone 6-bit symbol cannot carry a whole byte.
	if len(body)%4 == 1 {
		return nil, errors.InvalidLength(c.name, len(body), "impossible base64 remainder")
	}

	data := make([]byte, 0, len(body)*6/8)
	var acc, bits uint
	for i := 0; i < len(body); i++ {
		v, ok := c.tbl.Index(body[i])
		if !ok {
			return nil, errors.InvalidSymbol(c.name, rune(body[i]), i)
		}
		acc = acc<<6 | uint(v)
		bits += 6
		if bits >= 8 {
			bits -= 8
			data = append(data, byte(acc>>bits))
		}
	}
	return data, nil
}
