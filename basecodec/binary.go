package basecodec

import (
	"strings"

	"github.com/wippyai/multibase/errors"
)

type binaryCodec struct {
	name string
}

// NewBinary returns the base2 codec: each byte becomes eight '0'/'1'
// characters, most significant bit first. name labels errors.
func NewBinary(name string) Codec {
	return binaryCodec{name: name}
}

func (c binaryCodec) Encode(data []byte) string {
	dst := make([]byte, len(data)*8)
	for i, b := range data {
		for j := 0; j < 8; j++ {
			if b&(1<<uint(7-j)) == 0 {
				dst[i*8+j] = '0'
			} else {
				dst[i*8+j] = '1'
			}
		}
	}
	return string(dst)
}

func (c binaryCodec) Decode(body string) ([]byte, error) {
	// Well-formed producers emit whole bytes. Short leading groups are
	// tolerated by left-padding with zero bits, matching the multibase
	// reference behavior for malformed input.
	pad := 0
	if rem := len(body) % 8; rem != 0 {
		pad = 8 - rem
		body = strings.Repeat("0", pad) + body
	}

	data := make([]byte, len(body)/8)
	for i := 0; i < len(body); i++ {
		var bit byte
		switch body[i] {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return nil, errors.InvalidSymbol(c.name, rune(body[i]), i-pad)
		}
		data[i/8] = data[i/8]<<1 | bit
	}
	return data, nil
}
