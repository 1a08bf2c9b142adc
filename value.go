package sqift

import (
	"bytes"
	"fmt"
	"strconv"
)

// Kind enumerates the storage classes a StorageValue can hold. It matches the
// set of fundamental types the SQLite engine itself stores.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindReal
	KindText
	KindBlob
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindInteger:
		return "INTEGER"
	case KindReal:
		return "REAL"
	case KindText:
		return "TEXT"
	case KindBlob:
		return "BLOB"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// StorageValue is one value as the database stores it: exactly one of NULL, a
// 64-bit signed integer, a 64-bit float, a text string, or a blob of bytes.
// It is a carrier only; all conversion rules live on the types that implement
// Bindable and Extractable.
//
// StorageValue owns its payload. Blob contents are copied on the way in and
// on the way out, so a StorageValue never aliases caller-owned buffers. The
// zero value is the NULL variant.
type StorageValue struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    []byte
}

// NewNull returns the NULL storage value.
func NewNull() StorageValue {
	return StorageValue{kind: KindNull}
}

// NewInteger returns a storage value holding the given 64-bit integer.
func NewInteger(i int64) StorageValue {
	return StorageValue{kind: KindInteger, i: i}
}

// NewReal returns a storage value holding the given 64-bit float.
func NewReal(f float64) StorageValue {
	return StorageValue{kind: KindReal, f: f}
}

// NewText returns a storage value holding the given string.
func NewText(s string) StorageValue {
	return StorageValue{kind: KindText, s: s}
}

// NewBlob returns a storage value holding a copy of the given bytes.
func NewBlob(b []byte) StorageValue {
	var cp []byte
	if b != nil {
		cp = make([]byte, len(b))
		copy(cp, b)
	}
	return StorageValue{kind: KindBlob, b: cp}
}

// Kind returns which of the five variants the value holds.
func (v StorageValue) Kind() Kind {
	return v.kind
}

// Int64 returns the integer payload. It is only meaningful when Kind is
// KindInteger.
func (v StorageValue) Int64() int64 {
	return v.i
}

// Float64 returns the float payload. It is only meaningful when Kind is
// KindReal.
func (v StorageValue) Float64() float64 {
	return v.f
}

// Text returns the string payload. It is only meaningful when Kind is
// KindText.
func (v StorageValue) Text() string {
	return v.s
}

// Bytes returns a copy of the blob payload. It is only meaningful when Kind
// is KindBlob.
func (v StorageValue) Bytes() []byte {
	if v.b == nil {
		return nil
	}
	cp := make([]byte, len(v.b))
	copy(cp, v.b)
	return cp
}

// Equal returns whether other holds the same variant with an equal payload.
func (v StorageValue) Equal(other StorageValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInteger:
		return v.i == other.i
	case KindReal:
		return v.f == other.f
	case KindText:
		return v.s == other.s
	case KindBlob:
		return bytes.Equal(v.b, other.b)
	default:
		return false
	}
}

func (v StorageValue) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s)
	case KindBlob:
		return fmt.Sprintf("x'%x'", v.b)
	default:
		return fmt.Sprintf("StorageValue(kind=%d)", int(v.kind))
	}
}
