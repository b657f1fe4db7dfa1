// Package alphabet builds symbol tables shared by the base codec families.
package alphabet

// Invalid marks table slots with no symbol assigned.
const Invalid = 0xFF

// Table maps single-byte symbols to their alphabet indexes and back.
// The index array covers every byte value so decode lookups are a single
// load, with Invalid marking bytes outside the alphabet.
type Table struct {
	symbols string
	index   [256]byte
}

// New builds a case-sensitive table. The alphabet must hold between 2 and
// 255 unique ASCII symbols; anything else panics, since alphabets are fixed
// at registration time. A single symbol is rejected because radix 1 cannot
// carry positional digits.
func New(symbols string) *Table {
	return build(symbols, false)
}

// NewFold builds a table that decodes both letter cases to the same index.
// Encoding still uses the symbols exactly as given.
func NewFold(symbols string) *Table {
	return build(symbols, true)
}

func build(symbols string, fold bool) *Table {
	if len(symbols) < 2 {
		panic("alphabet: fewer than two symbols")
	}
	if len(symbols) > 255 {
		panic("alphabet: more than 255 symbols")
	}

	t := &Table{symbols: symbols}
	for i := range t.index {
		t.index[i] = Invalid
	}

	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c >= 0x80 {
			panic("alphabet: non-ASCII symbol")
		}
		if t.index[c] != Invalid {
			panic("alphabet: duplicate symbol " + string(c))
		}
		t.index[c] = byte(i)

		if !fold {
			continue
		}
		switch {
		case c >= 'a' && c <= 'z':
			t.setFolded(c-'a'+'A', byte(i))
		case c >= 'A' && c <= 'Z':
			t.setFolded(c-'A'+'a', byte(i))
		}
	}

	return t
}

func (t *Table) setFolded(c, idx byte) {
	if t.index[c] != Invalid {
		panic("alphabet: case fold collides with symbol " + string(c))
	}
	t.index[c] = idx
}

// Len returns the number of symbols (the radix).
func (t *Table) Len() int {
	return len(t.symbols)
}

// Symbol returns the symbol at index i.
func (t *Table) Symbol(i int) byte {
	return t.symbols[i]
}

// String returns the alphabet as given to the constructor.
func (t *Table) String() string {
	return t.symbols
}

// Index returns the alphabet index of c, or false when c is not a symbol.
func (t *Table) Index(c byte) (byte, bool) {
	v := t.index[c]
	return v, v != Invalid
}
