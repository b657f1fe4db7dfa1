package multibase

import (
	"sync"

	"github.com/wippyai/multibase/basecodec"
	"github.com/wippyai/multibase/errors"
	"go.uber.org/zap"
)

// Definition binds one registered base to its prefix code point and codec.
type Definition struct {
	Base   Base
	Prefix rune
	Codec  basecodec.Codec
}

// definitionSource describes a base before registration resolves it. The
// bit-packing families supply a codec directly; alphabet-only sources fall
// back to the arbitrary-radix codec. A source with neither is invalid.
type definitionSource struct {
	base     Base
	codec    basecodec.Codec
	alphabet string
}

// Registry is the resolved base table: definitions in registration order
// plus reverse indexes by identifier and prefix. It is immutable once built
// and safe for concurrent reads.
type Registry struct {
	defs     []Definition
	byBase   map[Base]int
	byPrefix map[rune]int
}

// newRegistry resolves and validates sources into a Registry. Each source
// must have a code table row and a resolvable codec, and may not collide
// with an earlier source on identifier or prefix. The first violation aborts
// construction; order only determines which collision surfaces first.
func newRegistry(sources []definitionSource) (*Registry, error) {
	r := &Registry{
		defs:     make([]Definition, 0, len(sources)),
		byBase:   make(map[Base]int, len(sources)),
		byPrefix: make(map[rune]int, len(sources)),
	}

	log := Logger()
	for _, src := range sources {
		prefix, ok := codeTable[src.base]
		if !ok {
			return nil, errors.MissingCodePoint(string(src.base))
		}

		codec := src.codec
		if codec == nil {
			if src.alphabet == "" {
				return nil, errors.UnresolvedCodec(string(src.base))
			}
			codec = basecodec.NewAlphabet(string(src.base), src.alphabet)
		}

		if _, dup := r.byBase[src.base]; dup {
			return nil, errors.DuplicateBase(string(src.base))
		}
		if i, dup := r.byPrefix[prefix]; dup {
			return nil, errors.DuplicatePrefix(string(src.base), prefix, string(r.defs[i].Base))
		}

		r.byBase[src.base] = len(r.defs)
		r.byPrefix[prefix] = len(r.defs)
		r.defs = append(r.defs, Definition{Base: src.base, Prefix: prefix, Codec: codec})

		log.Debug("base registered",
			zap.String("base", string(src.base)),
			zap.String("prefix", string(prefix)))
	}

	log.Debug("registry built", zap.Int("bases", len(r.defs)))
	return r, nil
}

func (r *Registry) lookup(base Base) (Definition, bool) {
	i, ok := r.byBase[base]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

func (r *Registry) lookupPrefix(prefix rune) (Definition, bool) {
	i, ok := r.byPrefix[prefix]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Lookup returns the definition registered for base.
func (r *Registry) Lookup(base Base) (Definition, error) {
	def, ok := r.lookup(base)
	if !ok {
		return Definition{}, errors.UnknownBase(errors.StageLookup, string(base))
	}
	return def, nil
}

// LookupPrefix returns the definition whose prefix code point is prefix.
func (r *Registry) LookupPrefix(prefix rune) (Definition, error) {
	def, ok := r.lookupPrefix(prefix)
	if !ok {
		return Definition{}, errors.UnknownPrefix(errors.StageLookup, prefix)
	}
	return def, nil
}

// Definitions returns the registered definitions in registration order.
// The slice is a copy; the registry itself never changes after construction.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, len(r.defs))
	copy(defs, r.defs)
	return defs
}

// Len returns the number of registered bases.
func (r *Registry) Len() int {
	return len(r.defs)
}

// defaultDefinitions lists every implemented base in code table order.
// base1 and base10 are reserved rows without codecs and are deliberately
// absent: their prefixes stay unparseable.
var defaultDefinitions = []definitionSource{
	{base: Base2, codec: basecodec.NewBinary(string(Base2))},
	{base: Base8, alphabet: basecodec.OctalAlphabet},
	{base: Base16, codec: basecodec.NewHex(string(Base16), false)},
	{base: Base16Upper, codec: basecodec.NewHex(string(Base16Upper), true)},
	{base: Base32, codec: basecodec.NewBase32(string(Base32), basecodec.Base32Config{})},
	{base: Base32Upper, codec: basecodec.NewBase32(string(Base32Upper), basecodec.Base32Config{Upper: true})},
	{base: Base32Pad, codec: basecodec.NewBase32(string(Base32Pad), basecodec.Base32Config{Pad: true})},
	{base: Base32PadUpper, codec: basecodec.NewBase32(string(Base32PadUpper), basecodec.Base32Config{Upper: true, Pad: true})},
	{base: Base32Hex, codec: basecodec.NewBase32(string(Base32Hex), basecodec.Base32Config{HexAlphabet: true})},
	{base: Base32HexUpper, codec: basecodec.NewBase32(string(Base32HexUpper), basecodec.Base32Config{HexAlphabet: true, Upper: true})},
	{base: Base32HexPad, codec: basecodec.NewBase32(string(Base32HexPad), basecodec.Base32Config{HexAlphabet: true, Pad: true})},
	{base: Base32HexPadUpper, codec: basecodec.NewBase32(string(Base32HexPadUpper), basecodec.Base32Config{HexAlphabet: true, Upper: true, Pad: true})},
	{base: Base58BTC, alphabet: basecodec.Base58BTCAlphabet},
	{base: Base58Flickr, alphabet: basecodec.Base58FlickrAlphabet},
	{base: Base64, codec: basecodec.NewBase64(string(Base64), basecodec.Base64Config{})},
	{base: Base64Pad, codec: basecodec.NewBase64(string(Base64Pad), basecodec.Base64Config{Pad: true})},
	{base: Base64URL, codec: basecodec.NewBase64(string(Base64URL), basecodec.Base64Config{URLAlphabet: true})},
	{base: Base64URLPad, codec: basecodec.NewBase64(string(Base64URLPad), basecodec.Base64Config{URLAlphabet: true, Pad: true})},
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry holding every implemented base. It is
// built exactly once, on first use, and is immutable afterwards. A
// construction failure means the built-in definition list is broken and
// panics: registration errors are programming errors, not runtime
// conditions.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := newRegistry(defaultDefinitions)
		if err != nil {
			panic("multibase: invalid built-in base list: " + err.Error())
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
