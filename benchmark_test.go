package multibase

import (
	"testing"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/mr-tron/base58"
)

func benchPayload(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	return data
}

func BenchmarkFormat_Base16(b *testing.B) {
	data := benchPayload(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Format(Base16, data)
	}
}

func BenchmarkFormat_Base32(b *testing.B) {
	data := benchPayload(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Format(Base32, data)
	}
}

func BenchmarkFormat_Base58BTC(b *testing.B) {
	data := benchPayload(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Format(Base58BTC, data)
	}
}

func BenchmarkFormat_Base64(b *testing.B) {
	data := benchPayload(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Format(Base64, data)
	}
}

func BenchmarkFormat_Base64_Large(b *testing.B) {
	data := benchPayload(65536)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Format(Base64, data)
	}
}

func BenchmarkParse_Base16(b *testing.B) {
	s, _ := Format(Base16, benchPayload(32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(s)
	}
}

func BenchmarkParse_Base32(b *testing.B) {
	s, _ := Format(Base32, benchPayload(32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(s)
	}
}

func BenchmarkParse_Base58BTC(b *testing.B) {
	s, _ := Format(Base58BTC, benchPayload(32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(s)
	}
}

func BenchmarkParse_Base64(b *testing.B) {
	s, _ := Format(Base64, benchPayload(32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(s)
	}
}

func BenchmarkEncoder_Base64(b *testing.B) {
	enc, _ := NewEncoder(Base64)
	data := benchPayload(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = enc.Encode(data)
	}
}

// Reference points for the base58btc codec against the two widespread
// Go implementations, on a hash-sized payload.

func BenchmarkEncodeBase58_Registry(b *testing.B) {
	data := benchPayload(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FormatBody(Base58BTC, data)
	}
}

func BenchmarkEncodeBase58_MrTron(b *testing.B) {
	data := benchPayload(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base58.Encode(data)
	}
}

func BenchmarkEncodeBase58_Btcutil(b *testing.B) {
	data := benchPayload(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = btcbase58.Encode(data)
	}
}

func BenchmarkDecodeBase58_Registry(b *testing.B) {
	s, _ := FormatBody(Base58BTC, benchPayload(32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseBody(Base58BTC, s)
	}
}

func BenchmarkDecodeBase58_MrTron(b *testing.B) {
	s, _ := FormatBody(Base58BTC, benchPayload(32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = base58.Decode(s)
	}
}

func BenchmarkDecodeBase58_Btcutil(b *testing.B) {
	s, _ := FormatBody(Base58BTC, benchPayload(32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = btcbase58.Decode(s)
	}
}
