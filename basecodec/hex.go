package basecodec

import (
	"github.com/wippyai/multibase/basecodec/internal/alphabet"
	"github.com/wippyai/multibase/errors"
)

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

type hexCodec struct {
	name string
	tbl  *alphabet.Table
}

// NewHex returns a base16 codec emitting two digits per byte in the
// requested case. Decoding folds case regardless of the variant: the
// identifier selects the encoder's output, not the decoder's tolerance.
func NewHex(name string, upper bool) Codec {
	symbols := hexLower
	if upper {
		symbols = hexUpper
	}
	return hexCodec{name: name, tbl: alphabet.NewFold(symbols)}
}

func (c hexCodec) Encode(data []byte) string {
	dst := make([]byte, len(data)*2)
	for i, b := range data {
		dst[i*2] = c.tbl.Symbol(int(b >> 4))
		dst[i*2+1] = c.tbl.Symbol(int(b & 0x0F))
	}
	return string(dst)
}

func (c hexCodec) Decode(body string) ([]byte, error) {
	if len(body)%2 != 0 {
		return nil, errors.InvalidLength(c.name, len(body), "must be a multiple of 2")
	}

	data := make([]byte, len(body)/2)
	for i := 0; i < len(body); i += 2 {
		hi, ok := c.tbl.Index(body[i])
		if !ok {
			return nil, errors.InvalidSymbol(c.name, rune(body[i]), i)
		}
		lo, ok := c.tbl.Index(body[i+1])
		if !ok {
			return nil, errors.InvalidSymbol(c.name, rune(body[i+1]), i+1)
		}
		data[i/2] = hi<<4 | lo
	}
	return data, nil
}
