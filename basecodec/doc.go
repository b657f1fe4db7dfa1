// Package basecodec implements the base encoding families used by multibase.
//
// Each family converts whole byte buffers to and from a text body with no
// prefix attached. The families split into two groups:
//
// # Bit-Packing Families
//
// Fixed bits per character, bytes consumed in groups:
//
//	Family   Bits/char  Group         Constructor
//	─────────────────────────────────────────────
//	binary   1          1 byte/8 ch   NewBinary
//	hex      4          1 byte/2 ch   NewHex
//	base32   5          5 bytes/8 ch  NewBase32
//	base64   6          3 bytes/4 ch  NewBase64
//
// Base32 comes in eight variants (standard or extended-hex alphabet, upper
// or lower case, padded or unpadded) and base64 in four (standard or
// URL-safe alphabet, padded or unpadded). Variant selection only shapes the
// encoded output: decoding always accepts padded and unpadded input, and the
// case-insensitive families (hex, base32) fold letter case away.
//
// # Arbitrary-Radix Family
//
// NewAlphabet derives a codec from an alphabet string of N distinct symbols,
// treating the payload as a big-endian integer in radix N. Leading 0x00
// bytes cannot survive an integer conversion, so they are carried separately
// as repeated leading zero symbols (the symbol at index 0):
//
//	NewAlphabet("base8", OctalAlphabet).Encode([]byte{0x00, 0x01}) == "001"
//
// This family backs base8 and both base58 variants, and serves as the
// fallback for any base defined only by its alphabet.
//
// # Errors
//
// Decode failures use the structured kinds from the errors package:
// invalid_symbol carries the offending character and its byte offset,
// invalid_length the impossible input length. Encoding cannot fail.
package basecodec
