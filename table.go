package multibase

// Base identifies one encoding from the multibase code table. The string
// value is the canonical identifier; upper-case identifiers name the
// upper-case output variants of the same family.
type Base string

// Identifiers from the multibase code table.
const (
	Base1             Base = "base1"        // reserved, no codec assigned
	Base2             Base = "base2"        // binary, 8 characters per byte
	Base8             Base = "base8"        // octal, arbitrary-radix
	Base10            Base = "base10"       // reserved, no codec assigned
	Base16            Base = "base16"       // hexadecimal, lower case
	Base16Upper       Base = "BASE16"       // hexadecimal, upper case
	Base32            Base = "base32"       // RFC 4648, lower case, no padding
	Base32Upper       Base = "BASE32"       // RFC 4648, upper case, no padding
	Base32Pad         Base = "base32pad"    // RFC 4648, lower case, padded
	Base32PadUpper    Base = "BASE32PAD"    // RFC 4648, upper case, padded
	Base32Hex         Base = "base32hex"    // extended hex, lower case, no padding
	Base32HexUpper    Base = "BASE32HEX"    // extended hex, upper case, no padding
	Base32HexPad      Base = "base32hexpad" // extended hex, lower case, padded
	Base32HexPadUpper Base = "BASE32HEXPAD" // extended hex, upper case, padded
	Base58BTC         Base = "base58btc"    // Bitcoin alphabet
	Base58Flickr      Base = "base58flickr" // Flickr alphabet
	Base64            Base = "base64"       // RFC 4648, no padding
	Base64Pad         Base = "base64pad"    // RFC 4648, padded
	Base64URL         Base = "base64url"    // URL-safe alphabet, no padding
	Base64URLPad      Base = "base64urlpad" // URL-safe alphabet, padded
)

// codeTable is the canonical multibase code table: one prefix code point per
// identifier, fixed by the published standard. Interoperability depends on
// these assignments, so the table is closed: a base absent here cannot be
// registered. base1 and base10 hold reserved rows with no codec in this
// library.
var codeTable = map[Base]rune{
	Base1:             '1',
	Base2:             '0',
	Base8:             '7',
	Base10:            '9',
	Base16:            'f',
	Base16Upper:       'F',
	Base32:            'b',
	Base32Upper:       'B',
	Base32Pad:         'c',
	Base32PadUpper:    'C',
	Base32Hex:         'v',
	Base32HexUpper:    'V',
	Base32HexPad:      't',
	Base32HexPadUpper: 'T',
	Base58BTC:         'z',
	Base58Flickr:      'Z',
	Base64:            'm',
	Base64Pad:         'M',
	Base64URL:         'u',
	Base64URLPad:      'U',
}

// CodePoint returns the prefix code point the canonical table assigns to
// base. The second result is false for identifiers outside the table.
// Reserved identifiers (base1, base10) have code points here even though no
// codec is registered for them.
func CodePoint(base Base) (rune, bool) {
	cp, ok := codeTable[base]
	return cp, ok
}
