// Package errors provides structured error types for the multibase library.
//
// Errors are categorized by Stage (where the error occurred) and Kind (error
// category), so callers can react to a failure class without inspecting
// message text:
//
//	data, err := multibase.Parse(s)
//	if errors.IsKind(err, errors.KindInvalidSymbol) {
//		// reject the input, do not retry
//	}
//
// Registration-stage kinds (duplicate_base, duplicate_prefix,
// missing_code_point, unresolved_codec) indicate a broken static base list
// and are fatal during registry construction. All other kinds describe the
// caller's input and are returned synchronously from the failing call.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
