// Package parser converts untyped JSON documents into typed values.
//
// Navigation and typing are separate steps. I and Index never fail: they
// return a node wrapping the sub-value, or a null node when it is absent. Only
// the typed accessors (Bool, Str, U64...) fail, with an *ExpectedError that
// records where the value was, what it was and what was required:
//
//	size, err := doc.I("author").I("profile").I("images").I("90x90").Str()
//	// at author.profile.images.90x90: found number 5, expected string
package parser

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

const (
	typeNull   = "null"
	typeBool   = "bool"
	typeNumber = "number"
	typeString = "string"
	typeArray  = "array"
	typeObject = "object"
)

// Parser wraps one JSON value. It is immutable and cheap to copy.
type Parser struct {
	value gjson.Result
	path  string
}

// Parse wraps a JSON document.
func Parse(data []byte) (Parser, error) {
	if !gjson.ValidBytes(data) {
		return Parser{}, &SyntaxError{Snippet: snippet(string(data))}
	}

	return Parser{value: gjson.ParseBytes(data)}, nil
}

// ParseString wraps a JSON document held in a string.
func ParseString(data string) (Parser, error) {
	if !gjson.Valid(data) {
		return Parser{}, &SyntaxError{Snippet: snippet(data)}
	}

	return Parser{value: gjson.Parse(data)}, nil
}

// FromResult wraps an already parsed gjson value.
func FromResult(value gjson.Result) Parser {
	return Parser{value: value}
}

func snippet(data string) string {
	if len(data) > maxFoundLength {
		return data[:maxFoundLength] + "..."
	}
	return data
}

// I returns the object field key. Absent fields and non-object values yield
// a null node.
func (p Parser) I(key string) Parser {
	child := Parser{path: joinKey(p.path, key)}
	if !p.value.IsObject() {
		return child
	}

	// Duplicate keys resolve to the last occurrence.
	p.value.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			child.value = v
		}
		return true
	})

	return child
}

// Index returns the array element i. Out of range indexes and non-array values
// yield a null node.
func (p Parser) Index(i int) Parser {
	child := Parser{path: joinIndex(p.path, i)}
	if !p.value.IsArray() || i < 0 {
		return child
	}

	elements := p.value.Array()
	if i < len(elements) {
		child.value = elements[i]
	}

	return child
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// Path returns the location of the node inside the document.
func (p Parser) Path() string {
	return p.path
}

// Value returns the wrapped gjson value.
func (p Parser) Value() gjson.Result {
	return p.value
}

// Raw returns the raw JSON text of the node. Absent values yield "".
func (p Parser) Raw() string {
	return p.value.Raw
}

// Exists returns false for values missing from the document.
func (p Parser) Exists() bool {
	return p.value.Exists()
}

// IsNull returns true for JSON null and for absent values.
func (p Parser) IsNull() bool {
	return p.value.Type == gjson.Null
}

// TypeName returns the JSON type of the node.
func (p Parser) TypeName() string {
	switch p.value.Type {
	case gjson.False, gjson.True:
		return typeBool
	case gjson.Number:
		return typeNumber
	case gjson.String:
		return typeString
	case gjson.JSON:
		if p.value.IsArray() {
			return typeArray
		}
		return typeObject
	default:
		return typeNull
	}
}

func (p Parser) expected(expected Expected) *ExpectedError {
	return &ExpectedError{
		Path:      p.path,
		Found:     p.value.Raw,
		FoundType: p.TypeName(),
		Expected:  expected,
	}
}

// Bool expects a JSON boolean.
func (p Parser) Bool() (bool, error) {
	switch p.value.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	default:
		return false, p.expected(ExpectedBool)
	}
}

// Str expects a JSON string.
func (p Parser) Str() (string, error) {
	if p.value.Type != gjson.String {
		return "", p.expected(ExpectedString)
	}

	return p.value.Str, nil
}

// U64 expects a non-negative integral JSON number that fits into uint64.
// Fractions and exponents are rejected.
func (p Parser) U64() (uint64, error) {
	if p.value.Type != gjson.Number {
		return 0, p.expected(ExpectedU64)
	}

	v, err := strconv.ParseUint(p.value.Raw, 10, 64)
	if err != nil {
		return 0, p.expected(ExpectedU64)
	}

	return v, nil
}

// U8 expects an integral JSON number in [0, 255].
func (p Parser) U8() (uint8, error) {
	v, err := p.U64()
	if err != nil || v > math.MaxUint8 {
		return 0, p.expected(ExpectedU8)
	}

	return uint8(v), nil
}

// U16 expects an integral JSON number in [0, 65535].
func (p Parser) U16() (uint16, error) {
	v, err := p.U64()
	if err != nil || v > math.MaxUint16 {
		return 0, p.expected(ExpectedU16)
	}

	return uint16(v), nil
}

// Array expects a JSON array and returns one node per element.
func (p Parser) Array() ([]Parser, error) {
	if !p.value.IsArray() {
		return nil, p.expected(ExpectedArray)
	}

	elements := p.value.Array()
	ret := make([]Parser, 0, len(elements))
	for i, element := range elements {
		ret = append(ret, Parser{value: element, path: joinIndex(p.path, i)})
	}

	return ret, nil
}

// Optional treats null and absent values as "no value" and applies conv to
// anything else.
//
// Usage:
//
//	toName, err := parser.Optional(data.I("commentee_username"), parser.Parser.Str)
func Optional[T any](p Parser, conv func(Parser) (T, error)) (*T, error) {
	if p.IsNull() {
		return nil, nil
	}

	v, err := conv(p)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
