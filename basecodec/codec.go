package basecodec

// Codec converts between raw bytes and the text body of one base encoding.
// The body never includes a multibase prefix; prefix handling belongs to the
// dispatch layer. Implementations are stateless and safe for concurrent use.
type Codec interface {
	// Encode returns the text body for data. Encoding cannot fail: every
	// byte sequence, including the empty one, has a representation.
	Encode(data []byte) string

	// Decode reconstructs the bytes a body was encoded from. It fails with
	// errors.KindInvalidSymbol for characters outside the codec's alphabet
	// and errors.KindInvalidLength for lengths its packing cannot produce.
	Decode(body string) ([]byte, error)
}
