package parser

import (
	"fmt"
	"reflect"
)

// Unmarshaler is implemented by values that can build themselves from a
// Parser node.
type Unmarshaler interface {
	UnmarshalParser(p Parser) error
}

// Decode builds a T from p through its UnmarshalParser method.
//
// Usage:
//
//	user, err := parser.Decode[scratch.User](doc)
func Decode[T any, PT interface {
	*T
	Unmarshaler
}](p Parser) (T, error) {
	var v T
	if err := PT(&v).UnmarshalParser(p); err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}

// DecodeAll decodes every node and stops at the first failure.
func DecodeAll[T any, PT interface {
	*T
	Unmarshaler
}](nodes []Parser) ([]T, error) {
	ret := make([]T, 0, len(nodes))
	for _, node := range nodes {
		v, err := Decode[T, PT](node)
		if err != nil {
			return nil, err
		}

		ret = append(ret, v)
	}

	return ret, nil
}

// DecodeArray expects p to be an array and decodes every element.
func DecodeArray[T any, PT interface {
	*T
	Unmarshaler
}](p Parser) ([]T, error) {
	nodes, err := p.Array()
	if err != nil {
		return nil, err
	}

	return DecodeAll[T, PT](nodes)
}

// Decode is a shorthand for v.UnmarshalParser(p) that rejects nil targets,
// typed nil pointers included.
func (p Parser) Decode(v Unmarshaler) error {
	if v == nil {
		return fmt.Errorf("cannot decode %s into nil", p.TypeName())
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Errorf("cannot decode %s into nil %T", p.TypeName(), v)
	}

	return v.UnmarshalParser(p)
}
