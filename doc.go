// Package multibase implements self-describing base encodings for binary data.
//
// A multibase string carries its own decoding instructions: the first code
// point identifies which base encoding produced the remainder, so a consumer
// needs no external context to decode it. The prefix assignments follow the
// published multibase code table and are stable across implementations.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	multibase/           Root package: code table, registry, Format/Parse API
//	├── basecodec/       Base codec families (bit-packing and arbitrary-radix)
//	└── errors/          Structured error types with stage/kind classification
//
// Data flows one direction for encoding and the reverse for decoding:
//
//	bytes  → codec encode → body → prefix attached → multibase string
//	string → prefix lookup → body → codec decode   → bytes
//
// # Quick Start
//
// Encode bytes into a self-describing string and decode it back:
//
//	s, err := multibase.Format(multibase.Base58BTC, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s) // "zCn8eVZg"
//
//	data, err := multibase.Parse(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s\n", data) // "hello"
//
// Inspect reports which base a string was encoded with:
//
//	insp, err := multibase.Inspect(s)
//	// insp.Prefix == 'z', insp.Base == multibase.Base58BTC
//
// FormatBody and ParseBody work with bare bodies for callers that transport
// the prefix some other way. NewEncoder and NewDecoder pin one base up front
// for hot paths.
//
// # Supported Bases
//
// Eighteen bases are registered: base2, base8, base16 and BASE16, the eight
// RFC 4648 base32 variants (standard and extended-hex alphabets, upper and
// lower case, padded and unpadded), base58btc and base58flickr, and the four
// RFC 4648 base64 variants (standard and URL-safe alphabets, padded and
// unpadded). base1 and base10 hold reserved rows in the code table but have
// no codec; their prefixes do not parse.
//
// Case-insensitive families (base16, base32) decode either letter case no
// matter which case variant the string was encoded with, and the padded
// variants decode unpadded bodies and vice versa. Encoding always produces
// the variant's canonical form.
//
// # Error Handling
//
// Every failure is a structured *errors.Error carrying a stage and a kind,
// so callers branch on failure class without matching message text:
//
//	data, err := multibase.Parse(s)
//	if errors.IsKind(err, errors.KindUnknownPrefix) {
//	    // not a multibase string we support
//	}
//
// Zero-length payloads are rejected at Format time (empty_payload) because a
// prefix with no body is ambiguous with malformed input, and strings shorter
// than two code points are rejected at Parse time (too_short).
//
// # Thread Safety
//
// The registry is built once, on first use, and is immutable afterwards. All
// operations are pure in-memory transformations safe for concurrent use; no
// call blocks or performs I/O.
package multibase
