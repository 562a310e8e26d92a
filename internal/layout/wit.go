package layout

import (
	"go.bytecodealliance.org/wit"
)

// Info is a WIT type's Canonical ABI layout plus record field offsets.
type Info struct {
	FieldOffs map[string]uintptr
	Layout
}

// Calculator computes Canonical ABI layouts of WIT types. Results for type
// definitions are cached per calculator; a Calculator is not safe for
// concurrent use.
type Calculator struct {
	cache map[*wit.TypeDef]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

func (c *Calculator) Calculate(t wit.Type) Info {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return info(1, 1)
	case wit.U16, wit.S16:
		return info(2, 2)
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return info(4, 4)
	case wit.U64, wit.S64, wit.F64:
		return info(8, 8)
	case wit.String:
		return info(8, 4) // [ptr: u32, len: u32]
	case *wit.TypeDef:
		return c.calculateTypeDef(typ)
	default:
		return info(0, 1)
	}
}

func info(size, align uintptr) Info {
	return Info{Layout: Layout{Size: size, Align: align}}
}

func (c *Calculator) calculateTypeDef(t *wit.TypeDef) Info {
	if cached, ok := c.cache[t]; ok {
		return cached
	}

	var res Info

	switch kind := t.Kind.(type) {
	case *wit.Record:
		res = c.calculateRecord(kind)
	case *wit.Variant:
		res = c.calculateVariant(kind)
	case *wit.Enum:
		size := discriminantSize(len(kind.Cases))
		res = info(size, size)
	case *wit.List:
		res = info(8, 4)
	case *wit.Option:
		res = c.calculateOption(kind)
	case *wit.Result:
		res = c.calculateResult(kind)
	case *wit.Tuple:
		res = c.calculateSequence(kind.Types)
	case *wit.Flags:
		res = calculateFlags(len(kind.Flags))
	case wit.Type:
		res = c.Calculate(kind)
	default:
		res = info(0, 1)
	}

	c.cache[t] = res
	return res
}

func (c *Calculator) calculateRecord(r *wit.Record) Info {
	types := make([]wit.Type, len(r.Fields))
	for i, f := range r.Fields {
		types[i] = f.Type
	}
	res := c.calculateSequence(types)
	if len(r.Fields) == 0 {
		return res
	}

	res.FieldOffs = make(map[string]uintptr, len(r.Fields))
	offset := uintptr(0)
	for _, field := range r.Fields {
		fl := c.Calculate(field.Type)
		offset = roundUp(offset, fl.Align)
		res.FieldOffs[field.Name] = offset
		offset += fl.Size
	}
	return res
}

// calculateSequence lays types out in order, each at its own alignment,
// and pads the total to the largest alignment.
func (c *Calculator) calculateSequence(types []wit.Type) Info {
	maxAlign := uintptr(1)
	offset := uintptr(0)

	for _, typ := range types {
		l := c.Calculate(typ)
		offset = roundUp(offset, l.Align)
		if l.Align > maxAlign {
			maxAlign = l.Align
		}
		offset += l.Size
	}

	return info(roundUp(offset, maxAlign), maxAlign)
}

func (c *Calculator) calculateVariant(v *wit.Variant) Info {
	if len(v.Cases) == 0 {
		return info(0, 1)
	}

	discSize := discriminantSize(len(v.Cases))
	maxAlign := discSize
	maxSize := uintptr(0)

	for _, cs := range v.Cases {
		if cs.Type == nil {
			continue
		}
		l := c.Calculate(cs.Type)
		maxAlign = max(maxAlign, l.Align)
		maxSize = max(maxSize, l.Size)
	}

	payloadOffset := roundUp(discSize, maxAlign)
	return info(roundUp(payloadOffset+maxSize, maxAlign), maxAlign)
}

func (c *Calculator) calculateOption(o *wit.Option) Info {
	inner := c.Calculate(o.Type)
	align := max(inner.Align, 1)
	payloadOffset := roundUp(1, align)
	return info(roundUp(payloadOffset+inner.Size, align), align)
}

func (c *Calculator) calculateResult(r *wit.Result) Info {
	ok, bad := info(0, 1), info(0, 1)
	if r.OK != nil {
		ok = c.Calculate(r.OK)
	}
	if r.Err != nil {
		bad = c.Calculate(r.Err)
	}

	maxAlign := max(ok.Align, bad.Align)
	maxSize := max(ok.Size, bad.Size)
	payloadOffset := roundUp(1, maxAlign)
	return info(roundUp(payloadOffset+maxSize, maxAlign), maxAlign)
}

func calculateFlags(n int) Info {
	switch {
	case n == 0:
		return info(0, 1)
	case n <= 8:
		return info(1, 1)
	case n <= 16:
		return info(2, 2)
	case n <= 32:
		return info(4, 4)
	case n <= 64:
		return info(8, 8)
	}
	// >64 flags: one u32 per 32 flags
	return info(uintptr((n+31)/32*4), 4)
}

func discriminantSize(numCases int) uintptr {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}

// roundUp is the unchecked AlignUp used where sizes are known to be small.
func roundUp(x, align uintptr) uintptr {
	if align == 0 {
		return x
	}
	return (x + align - 1) &^ (align - 1)
}
