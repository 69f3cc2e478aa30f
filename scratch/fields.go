package scratch

import "github.com/Alp4ka/s2pager/parser"

// fields reads values at key paths and keeps the first error. Reads after a
// failure are no-ops returning zero values.
type fields struct {
	p   parser.Parser
	err error
}

func fieldsOf(p parser.Parser) *fields {
	return &fields{p: p}
}

func (f *fields) node(path []string) parser.Parser {
	p := f.p
	for _, key := range path {
		p = p.I(key)
	}
	return p
}

func (f *fields) u64(path ...string) uint64 {
	if f.err != nil {
		return 0
	}

	v, err := f.node(path).U64()
	f.err = err
	return v
}

func (f *fields) u8(path ...string) uint8 {
	if f.err != nil {
		return 0
	}

	v, err := f.node(path).U8()
	f.err = err
	return v
}

func (f *fields) str(path ...string) string {
	if f.err != nil {
		return ""
	}

	v, err := f.node(path).Str()
	f.err = err
	return v
}

func (f *fields) bool(path ...string) bool {
	if f.err != nil {
		return false
	}

	v, err := f.node(path).Bool()
	f.err = err
	return v
}

func (f *fields) optStr(path ...string) *string {
	if f.err != nil {
		return nil
	}

	v, err := parser.Optional(f.node(path), parser.Parser.Str)
	f.err = err
	return v
}

func (f *fields) optU64(path ...string) *uint64 {
	if f.err != nil {
		return nil
	}

	v, err := parser.Optional(f.node(path), parser.Parser.U64)
	f.err = err
	return v
}

func (f *fields) commentLocation(path ...string) CommentLocation {
	code := f.u8(path...)
	if f.err != nil {
		return 0
	}

	location, err := ParseCommentLocation(code)
	f.err = err
	return location
}
