package model

import (
	"unsafe"

	"github.com/damedic/fhir-codec-go/primitive"
)

// MemSize returns an estimate of the memory held by the instance and
// everything it owns, in bytes.
func (i *Instance) MemSize() int {
	if i == nil {
		return 0
	}
	s := int(unsafe.Sizeof(*i))
	s += cap(i.values) * int(unsafe.Sizeof(Value(nil)))
	for _, v := range i.values {
		s += valueSize(v)
	}
	s += cap(i.unrecognized) * int(unsafe.Sizeof(RawField{}))
	for _, u := range i.unrecognized {
		s += len(u.Name) + cap(u.Value)
	}
	return s
}

func valueSize(v Value) int {
	switch v := v.(type) {
	case nil:
		return 0
	case *Instance:
		return v.MemSize()
	case Choice:
		return int(unsafe.Sizeof(v)) + len(v.Type) + valueSize(v.Value)
	case List:
		s := int(unsafe.Sizeof(v)) + cap(v)*int(unsafe.Sizeof(Value(nil)))
		for _, item := range v {
			s += valueSize(item)
		}
		return s
	case primitive.Value:
		// text dominates the size of every primitive
		return 2*int(unsafe.Sizeof("")) + len(v.String())
	default:
		return 0
	}
}
