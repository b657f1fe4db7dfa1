package basecodec

import (
	"math/big"

	"github.com/wippyai/multibase/basecodec/internal/alphabet"
	"github.com/wippyai/multibase/errors"
)

// Alphabets for the bases served by the arbitrary-radix family.
const (
	// OctalAlphabet is the base8 alphabet.
	OctalAlphabet = "01234567"

	// Base58BTCAlphabet is the Bitcoin base58 alphabet: no 0, O, I or l.
	Base58BTCAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// Base58FlickrAlphabet is Flickr's base58 ordering: lower case first.
	Base58FlickrAlphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
)

type alphabetCodec struct {
	name  string
	tbl   *alphabet.Table
	radix *big.Int
}

// NewAlphabet derives a codec from an alphabet of distinct single-byte
// symbols, interpreting payloads as big-endian integers in radix
// len(symbols). The symbol at index 0 doubles as the zero symbol carrying
// leading 0x00 bytes, so []byte{0x00, 0x01} and []byte{0x01} encode
// differently and both round-trip exactly.
//
// NewAlphabet panics on a malformed alphabet (fewer than two symbols,
// duplicate or non-ASCII symbols): alphabets are fixed at registration
// time, so that is a programming error, not an input condition.
func NewAlphabet(name, symbols string) Codec {
	return alphabetCodec{
		name:  name,
		tbl:   alphabet.New(symbols),
		radix: big.NewInt(int64(len(symbols))),
	}
}

func (c alphabetCodec) Encode(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	x := new(big.Int).SetBytes(data[zeros:])
	mod := new(big.Int)

	// Digits come out least significant first; reverse at the end.
	dst := make([]byte, 0, len(data)*2)
	for x.Sign() > 0 {
		x.DivMod(x, c.radix, mod)
		dst = append(dst, c.tbl.Symbol(int(mod.Int64())))
	}
	for i := 0; i < zeros; i++ {
		dst = append(dst, c.tbl.Symbol(0))
	}

	for i, j := 0, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return string(dst)
}

func (c alphabetCodec) Decode(body string) ([]byte, error) {
	zeroSym := c.tbl.Symbol(0)
	zeros := 0
	for zeros < len(body) && body[zeros] == zeroSym {
		zeros++
	}

	x := new(big.Int)
	digit := new(big.Int)
	for i := zeros; i < len(body); i++ {
		v, ok := c.tbl.Index(body[i])
		if !ok {
			return nil, errors.InvalidSymbol(c.name, rune(body[i]), i)
		}
		digit.SetInt64(int64(v))
		x.Mul(x, c.radix)
		x.Add(x, digit)
	}

	decoded := x.Bytes()
	data := make([]byte, zeros+len(decoded))
	copy(data[zeros:], decoded)
	return data, nil
}
