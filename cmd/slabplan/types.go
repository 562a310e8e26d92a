package main

import (
	"fmt"
	"strconv"
	"strings"

	"go.bytecodealliance.org/wit"
)

// parseType reads a WIT type written inline:
//
//	bool u8 s8 u16 s16 u32 s32 u64 s64 f32 f64 char string
//	list<T> option<T> tuple<T, ...> result result<T> result<T, E> result<_, E>
//	record{name: T, ...} enum(N) flags(N)
func parseType(s string) (wit.Type, error) {
	p := &typeParser{src: strings.Join(strings.Fields(s), "")}
	t, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("parse type %q: %w", s, err)
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("parse type %q: unexpected %q", s, p.src[p.pos:])
	}
	return t, nil
}

// maxCases bounds enum and flags counts.
const maxCases = 1 << 16

type typeParser struct {
	src string
	pos int
}

var primitives = map[string]wit.Type{
	"bool":   wit.Bool{},
	"u8":     wit.U8{},
	"s8":     wit.S8{},
	"u16":    wit.U16{},
	"s16":    wit.S16{},
	"u32":    wit.U32{},
	"s32":    wit.S32{},
	"u64":    wit.U64{},
	"s64":    wit.S64{},
	"f32":    wit.F32{},
	"f64":    wit.F64{},
	"char":   wit.Char{},
	"string": wit.String{},
}

func (p *typeParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *typeParser) accept(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *typeParser) expect(c byte) error {
	if !p.accept(c) {
		if p.pos >= len(p.src) {
			return fmt.Errorf("expected %q at end of input", c)
		}
		return fmt.Errorf("expected %q at position %d, found %q", c, p.pos, p.src[p.pos])
	}
	return nil
}

func (p *typeParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c != '-' && c != '_' && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) parse() (wit.Type, error) {
	name := p.ident()
	if t, ok := primitives[name]; ok {
		return t, nil
	}

	switch name {
	case "list", "option":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		inner, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		if name == "list" {
			return typeDef(&wit.List{Type: inner}), nil
		}
		return typeDef(&wit.Option{Type: inner}), nil

	case "tuple":
		types, err := p.typeList()
		if err != nil {
			return nil, err
		}
		return typeDef(&wit.Tuple{Types: types}), nil

	case "result":
		return p.result()

	case "record":
		return p.record()

	case "enum", "flags":
		n, err := p.count()
		if err != nil {
			return nil, err
		}
		if name == "enum" {
			cases := make([]wit.EnumCase, n)
			for i := range cases {
				cases[i].Name = "c" + strconv.Itoa(i)
			}
			return typeDef(&wit.Enum{Cases: cases}), nil
		}
		flags := make([]wit.Flag, n)
		for i := range flags {
			flags[i].Name = "f" + strconv.Itoa(i)
		}
		return typeDef(&wit.Flags{Flags: flags}), nil

	case "":
		return nil, fmt.Errorf("expected a type at position %d", p.pos)
	}
	return nil, fmt.Errorf("unknown type %q", name)
}

func (p *typeParser) typeList() ([]wit.Type, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	var types []wit.Type
	if p.accept('>') {
		return types, nil
	}
	for {
		t, err := p.parse()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
		if p.accept('>') {
			return types, nil
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
	}
}

func (p *typeParser) result() (wit.Type, error) {
	r := &wit.Result{}
	if !p.accept('<') {
		return typeDef(r), nil
	}

	if !p.accept('_') {
		ok, err := p.parse()
		if err != nil {
			return nil, err
		}
		r.OK = ok
	}
	if p.accept(',') {
		bad, err := p.parse()
		if err != nil {
			return nil, err
		}
		r.Err = bad
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	return typeDef(r), nil
}

func (p *typeParser) record() (wit.Type, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	rec := &wit.Record{}
	if p.accept('}') {
		return typeDef(rec), nil
	}
	for {
		name := p.ident()
		if name == "" {
			return nil, fmt.Errorf("expected a field name at position %d", p.pos)
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		t, err := p.parse()
		if err != nil {
			return nil, err
		}
		rec.Fields = append(rec.Fields, wit.Field{Name: name, Type: t})
		if p.accept('}') {
			return typeDef(rec), nil
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
	}
}

func (p *typeParser) count() (int, error) {
	if err := p.expect('('); err != nil {
		return 0, err
	}
	start := p.pos
	for p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, fmt.Errorf("expected a count at position %d", start)
	}
	if n > maxCases {
		return 0, fmt.Errorf("count %d exceeds %d", n, maxCases)
	}
	if err := p.expect(')'); err != nil {
		return 0, err
	}
	return n, nil
}

func typeDef(kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Kind: kind}
}
