package errors

import (
	"fmt"
	"strings"
)

// Stage indicates where in processing the error occurred
type Stage string

const (
	StageRegister Stage = "register" // registry construction
	StageLookup   Stage = "lookup"   // direct registry queries
	StageFormat   Stage = "format"   // bytes to multibase string
	StageParse    Stage = "parse"    // multibase string to bytes
	StageDecode   Stage = "decode"   // base codec decoding
)

// Kind categorizes the error
type Kind string

const (
	// Registry construction failures. These indicate a broken static base
	// list, not a runtime condition.
	KindDuplicateBase    Kind = "duplicate_base"
	KindDuplicatePrefix  Kind = "duplicate_prefix"
	KindMissingCodePoint Kind = "missing_code_point"
	KindUnresolvedCodec  Kind = "unresolved_codec"

	// Caller-supplied identifier or input problems.
	KindUnknownBase   Kind = "unknown_base"
	KindUnknownPrefix Kind = "unknown_prefix"
	KindEmptyPayload  Kind = "empty_payload"
	KindTooShort      Kind = "too_short"

	// Codec-level decode failures.
	KindInvalidSymbol Kind = "invalid_symbol"
	KindInvalidLength Kind = "invalid_length"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Stage  Stage
	Kind   Kind
	Base   string // base identifier, when one is in play
	Prefix rune   // prefix code point, when one is in play
	Offset int    // byte offset of the offending symbol, -1 when not applicable
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Stage))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Base != "" {
		b.WriteString(": base ")
		b.WriteString(e.Base)
	}

	if e.Detail != "" {
		if e.Base != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when their
// Kinds are equal; a target with an empty Stage matches any stage.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Stage != "" && e.Stage != t.Stage {
		return false
	}
	return e.Kind == t.Kind
}

// IsKind reports whether err is an *Error of the given kind anywhere in its
// chain.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Convenience constructors, one per kind

// DuplicateBase reports a base identifier registered twice.
func DuplicateBase(base string) *Error {
	return &Error{
		Stage:  StageRegister,
		Kind:   KindDuplicateBase,
		Base:   base,
		Offset: -1,
		Detail: "identifier already registered",
	}
}

// DuplicatePrefix reports a prefix code point claimed by two bases.
func DuplicatePrefix(base string, prefix rune, holder string) *Error {
	return &Error{
		Stage:  StageRegister,
		Kind:   KindDuplicatePrefix,
		Base:   base,
		Prefix: prefix,
		Offset: -1,
		Detail: fmt.Sprintf("prefix %q already held by %s", prefix, holder),
	}
}

// MissingCodePoint reports a base with no entry in the multibase code table.
func MissingCodePoint(base string) *Error {
	return &Error{
		Stage:  StageRegister,
		Kind:   KindMissingCodePoint,
		Base:   base,
		Offset: -1,
		Detail: "no code point assigned in the multibase table",
	}
}

// UnresolvedCodec reports a definition with neither an explicit codec nor an
// alphabet to derive one from.
func UnresolvedCodec(base string) *Error {
	return &Error{
		Stage:  StageRegister,
		Kind:   KindUnresolvedCodec,
		Base:   base,
		Offset: -1,
		Detail: "definition supplies neither codec nor alphabet",
	}
}

// UnknownBase reports an identifier absent from the registry.
func UnknownBase(stage Stage, base string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindUnknownBase,
		Base:   base,
		Offset: -1,
		Detail: "not registered",
	}
}

// UnknownPrefix reports a leading code point absent from the registry.
func UnknownPrefix(stage Stage, prefix rune) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindUnknownPrefix,
		Prefix: prefix,
		Offset: -1,
		Detail: fmt.Sprintf("no base registered for prefix %q", prefix),
	}
}

// EmptyPayload reports an attempt to format zero-length data.
func EmptyPayload(base string) *Error {
	return &Error{
		Stage:  StageFormat,
		Kind:   KindEmptyPayload,
		Base:   base,
		Offset: -1,
		Detail: "cannot format empty payload",
	}
}

// TooShort reports a multibase string with no room for a prefix and a body.
func TooShort(length int) *Error {
	return &Error{
		Stage:  StageParse,
		Kind:   KindTooShort,
		Offset: -1,
		Detail: fmt.Sprintf("input of length %d cannot carry a prefix and a body", length),
	}
}

// InvalidSymbol reports a character outside the codec's alphabet.
func InvalidSymbol(base string, sym rune, offset int) *Error {
	return &Error{
		Stage:  StageDecode,
		Kind:   KindInvalidSymbol,
		Base:   base,
		Offset: offset,
		Detail: fmt.Sprintf("symbol %q at offset %d not in alphabet", sym, offset),
	}
}

// InvalidLength reports an input length incompatible with the codec's packing.
func InvalidLength(base string, length int, detail string) *Error {
	return &Error{
		Stage:  StageDecode,
		Kind:   KindInvalidLength,
		Base:   base,
		Offset: -1,
		Detail: fmt.Sprintf("length %d: %s", length, detail),
	}
}
