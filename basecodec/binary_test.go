package basecodec

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/wippyai/multibase/errors"
)

func TestBinaryEncode(t *testing.T) {
	codec := NewBinary("base2")

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"all ones", []byte{0xFF}, "11111111"},
		{"all zeros", []byte{0x00}, "00000000"},
		{"low nibble", []byte{0x0F}, "00001111"},
		{"msb first", []byte{0x80}, "10000000"},
		{"two bytes", []byte{0xDE, 0xAD}, "1101111010101101"},
		{"leading zero byte", []byte{0x00, 0x01}, "0000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codec.Encode(tt.data)
			if got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestBinaryDecode(t *testing.T) {
	codec := NewBinary("base2")

	tests := []struct {
		name string
		body string
		want []byte
	}{
		{"whole byte", "11111111", []byte{0xFF}},
		{"two bytes", "1101111010101101", []byte{0xDE, 0xAD}},
		{"zero byte preserved", "0000000000000001", []byte{0x00, 0x01}},
		// Short leading groups are left-padded with zero bits, matching
		// the reference behavior for malformed input.
		{"single bit", "1", []byte{0x01}},
		{"three bits", "111", []byte{0x07}},
		{"nine bits", "111111111", []byte{0x01, 0xFF}},
		{"empty", "", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode(tt.body)
			if err != nil {
				t.Fatalf("Decode(%q): %v", tt.body, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestBinaryDecodeInvalidSymbol(t *testing.T) {
	codec := NewBinary("base2")

	tests := []struct {
		body   string
		offset int
	}{
		{"11112111", 4},
		{"2", 0},
		{"0000000x", 7},
	}

	for _, tt := range tests {
		_, err := codec.Decode(tt.body)
		if !errors.IsKind(err, errors.KindInvalidSymbol) {
			t.Fatalf("Decode(%q) = %v, want invalid_symbol", tt.body, err)
		}
		e, ok := err.(*errors.Error)
		if !ok {
			t.Fatalf("Decode(%q) returned %T, want *errors.Error", tt.body, err)
		}
		// Offsets refer to the input as given, not the padded form.
		if e.Offset != tt.offset {
			t.Errorf("Decode(%q) offset = %d, want %d", tt.body, e.Offset, tt.offset)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	codec := NewBinary("base2")
	rng := rand.New(rand.NewSource(2))

	for size := 1; size <= 64; size++ {
		data := make([]byte, size)
		rng.Read(data)

		decoded, err := codec.Decode(codec.Encode(data))
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("size %d: round trip mismatch", size)
		}
	}
}
