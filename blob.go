package sqift

import (
	"github.com/dekarrin/rezi/v2"
)

// Bytes stores itself as a BLOB unchanged. The bytes are copied both when
// binding and when extracting, so the stored value never aliases the slice a
// caller handed in.
type Bytes []byte

func (b Bytes) ToStorage() StorageValue {
	return NewBlob([]byte(b))
}

func (b *Bytes) FromStorage(v StorageValue) error {
	if v.Kind() != KindBlob {
		return kindMismatch(KindBlob, v)
	}
	*b = Bytes(v.Bytes())
	return nil
}

// Packed stores an arbitrary rezi-encodable value as a BLOB. When binding, V
// is the value to encode; ToStorage panics if rezi cannot encode it, which
// for the supported types (primitives, slices, maps, and types implementing
// encoding.BinaryMarshaler) only happens on programmer error. When
// extracting, V must be a non-nil pointer for rezi to decode into.
type Packed struct {
	V interface{}
}

func (p Packed) ToStorage() StorageValue {
	return NewBlob(rezi.MustEnc(p.V))
}

func (p *Packed) FromStorage(v StorageValue) error {
	if v.Kind() != KindBlob {
		return kindMismatch(KindBlob, v)
	}

	if _, err := rezi.Dec(v.Bytes(), p.V); err != nil {
		return NewError("", err, ErrParseFailure)
	}

	return nil
}
