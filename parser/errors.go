package parser

import (
	"fmt"

	"github.com/Alp4ka/s2pager/apierr"
)

// Expected is the type tag a typed accessor required.
type Expected uint8

const (
	ExpectedBool Expected = iota + 1
	ExpectedString
	ExpectedU64
	ExpectedU8
	ExpectedU16
	ExpectedArray
)

func (e Expected) String() string {
	switch e {
	case ExpectedBool:
		return "bool"
	case ExpectedString:
		return "string"
	case ExpectedU64:
		return "u64"
	case ExpectedU8:
		return "u8"
	case ExpectedU16:
		return "u16"
	case ExpectedArray:
		return "array"
	default:
		return fmt.Sprintf("Expected(%d)", uint8(e))
	}
}

const maxFoundLength = 64

// ExpectedError - a JSON value did not have the required type.
type ExpectedError struct {
	// Path - location of the value inside the document, empty for the root.
	Path string
	// Found - raw JSON text of the offending value, empty when it is absent.
	Found string
	// FoundType - JSON type of the offending value: null, bool, number, string,
	// array or object.
	FoundType string
	// Expected - the type the accessor required.
	Expected Expected
}

func (e *ExpectedError) Error() string {
	found := e.FoundType
	if e.Found != "" && e.FoundType != typeNull {
		raw := e.Found
		if len(raw) > maxFoundLength {
			raw = raw[:maxFoundLength] + "..."
		}
		found = fmt.Sprintf("%s %s", e.FoundType, raw)
	} else if e.Found == "" {
		found = "nothing"
	}

	at := e.Path
	if at == "" {
		at = "root"
	}

	return fmt.Sprintf("at %s: found %s, expected %s", at, found, e.Expected)
}

// Kind - implements apierr.Kinded.
func (e *ExpectedError) Kind() apierr.Kind { return apierr.KindShape }

// SyntaxError - the document is not valid JSON.
type SyntaxError struct {
	Snippet string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid json document: %q", e.Snippet)
}

// Kind - implements apierr.Kinded.
func (e *SyntaxError) Kind() apierr.Kind { return apierr.KindShape }

var (
	_ apierr.Kinded = (*ExpectedError)(nil)
	_ apierr.Kinded = (*SyntaxError)(nil)
)
