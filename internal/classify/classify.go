// Package classify maps external failures to recovery actions.
//
// The upstream libraries expose no structured error kinds, so classification
// pattern-matches on rendered message text. That signal is unstable by
// construction: every literal lives here and nowhere else, and the tests pin
// exact example messages so wording drift in a library adapter fails loudly.
package classify

import "strings"

const (
	// notAType marks relationship or deserialization calls handed a value
	// where a type was required.
	notAType = "first argument must be a type"

	// Field type mismatches carry both fragments.
	mismatch  = "does not match"
	fieldType = "field type"

	// scalarOrListUnion is the rendered name of the union shape that newer
	// configs declare and older deserializers reject.
	scalarOrListUnion = "float | [float]"
)

// NotAType reports whether err is a "first argument is not a type" failure.
func NotAType(err error) bool {
	return err != nil && strings.Contains(err.Error(), notAType)
}

// FieldMismatch reports whether err is a declared-field-type mismatch.
func FieldMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, mismatch) && strings.Contains(msg, fieldType)
}

// MentionsScalarOrListUnion reports whether the failure names the
// scalar-or-list union shape ("float | [float]").
func MentionsScalarOrListUnion(err error) bool {
	return err != nil && strings.Contains(err.Error(), scalarOrListUnion)
}
