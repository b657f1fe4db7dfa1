package alphabet

import "testing"

func TestTableIndex(t *testing.T) {
	tbl := New("01234567")

	if tbl.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", tbl.Len())
	}

	for i := 0; i < 8; i++ {
		c := tbl.Symbol(i)
		got, ok := tbl.Index(c)
		if !ok || got != byte(i) {
			t.Errorf("Index(%q) = %d, %v; want %d, true", c, got, ok, i)
		}
	}

	if _, ok := tbl.Index('8'); ok {
		t.Error("Index('8') should be invalid for an octal alphabet")
	}
	if _, ok := tbl.Index(0x80); ok {
		t.Error("Index(0x80) should be invalid")
	}
}

func TestTableFold(t *testing.T) {
	tbl := NewFold("0123456789abcdef")

	lo, okLo := tbl.Index('a')
	up, okUp := tbl.Index('A')
	if !okLo || !okUp || lo != up {
		t.Errorf("folded lookups differ: 'a'=%d,%v 'A'=%d,%v", lo, okLo, up, okUp)
	}

	// Encoding side keeps the original case
	if tbl.Symbol(10) != 'a' {
		t.Errorf("Symbol(10) = %q, want 'a'", tbl.Symbol(10))
	}

	// Digits are unaffected by folding
	d, ok := tbl.Index('7')
	if !ok || d != 7 {
		t.Errorf("Index('7') = %d, %v; want 7, true", d, ok)
	}
}

func TestTableStrictCase(t *testing.T) {
	tbl := New("abc")

	if _, ok := tbl.Index('A'); ok {
		t.Error("case-sensitive table should reject 'A'")
	}
}

func TestTablePanics(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		fold    bool
	}{
		{"empty", "", false},
		{"single symbol", "0", false},
		{"duplicate", "aba", false},
		{"non-ASCII", "ab\xc3\xa9", false},
		{"fold collision", "aA", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %q", tt.symbols)
				}
			}()
			if tt.fold {
				NewFold(tt.symbols)
			} else {
				New(tt.symbols)
			}
		})
	}
}
