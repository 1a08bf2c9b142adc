package sqift

import "math"

// This file contains the boolean, integer, and float binding types. They are
// defined types over the corresponding native types, in the manner of
// sql.Scanner wrappers, so a native value can be bound by converting it at
// the call site, e.g. sqift.Int32(n).
//
// Every integer-like type binds as INTEGER and every float type binds as
// REAL. Extraction of a sub-64-bit integer saturates to the target type's
// range rather than wrapping; a clamped but bounded value beats silent
// wraparound corruption, and keeping the conversion total means callers that
// already checked the storage kind never see a failure. Uint64 and Uint are
// the exception: SQLite has no unsigned 64-bit storage class, so they
// round-trip by reinterpreting the two's-complement bit pattern, which is
// lossless across the full unsigned range where a range check would not be.

// clampInt narrows v to [min, max], saturating at the bounds.
func clampInt(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampUint narrows v to [0, max], saturating at the bounds.
func clampUint(v int64, max uint64) uint64 {
	if v < 0 {
		return 0
	}
	u := uint64(v)
	if u > max {
		return max
	}
	return u
}

// Bool stores itself as an INTEGER, 1 for true and 0 for false. Any nonzero
// stored integer extracts as true.
type Bool bool

func (b Bool) ToStorage() StorageValue {
	if b {
		return NewInteger(1)
	}
	return NewInteger(0)
}

func (b *Bool) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*b = v.Int64() != 0
	return nil
}

type Int int

func (n Int) ToStorage() StorageValue {
	return NewInteger(int64(n))
}

func (n *Int) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Int(clampInt(v.Int64(), math.MinInt, math.MaxInt))
	return nil
}

type Int8 int8

func (n Int8) ToStorage() StorageValue {
	return NewInteger(int64(n))
}

func (n *Int8) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Int8(clampInt(v.Int64(), math.MinInt8, math.MaxInt8))
	return nil
}

type Int16 int16

func (n Int16) ToStorage() StorageValue {
	return NewInteger(int64(n))
}

func (n *Int16) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Int16(clampInt(v.Int64(), math.MinInt16, math.MaxInt16))
	return nil
}

type Int32 int32

func (n Int32) ToStorage() StorageValue {
	return NewInteger(int64(n))
}

func (n *Int32) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Int32(clampInt(v.Int64(), math.MinInt32, math.MaxInt32))
	return nil
}

type Int64 int64

func (n Int64) ToStorage() StorageValue {
	return NewInteger(int64(n))
}

func (n *Int64) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Int64(v.Int64())
	return nil
}

// Uint stores itself the same way as Uint64, through a 64-bit unsigned
// intermediate.
type Uint uint

func (n Uint) ToStorage() StorageValue {
	return NewInteger(int64(uint64(n)))
}

func (n *Uint) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Uint(uint64(v.Int64()))
	return nil
}

type Uint8 uint8

func (n Uint8) ToStorage() StorageValue {
	return NewInteger(int64(n))
}

func (n *Uint8) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Uint8(clampUint(v.Int64(), math.MaxUint8))
	return nil
}

type Uint16 uint16

func (n Uint16) ToStorage() StorageValue {
	return NewInteger(int64(n))
}

func (n *Uint16) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Uint16(clampUint(v.Int64(), math.MaxUint16))
	return nil
}

type Uint32 uint32

func (n Uint32) ToStorage() StorageValue {
	return NewInteger(int64(n))
}

func (n *Uint32) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Uint32(clampUint(v.Int64(), math.MaxUint32))
	return nil
}

// Uint64 stores itself as an INTEGER holding its two's-complement bit
// pattern. Values above math.MaxInt64 are stored as negative integers and
// come back unchanged on extraction; the numeric value in the column is not
// meaningful for them, only the bit pattern is.
type Uint64 uint64

func (n Uint64) ToStorage() StorageValue {
	return NewInteger(int64(uint64(n)))
}

func (n *Uint64) FromStorage(v StorageValue) error {
	if v.Kind() != KindInteger {
		return kindMismatch(KindInteger, v)
	}
	*n = Uint64(uint64(v.Int64()))
	return nil
}

// Float32 stores itself as a REAL, widened to 64 bits. Extraction narrows
// back to 32 bits and may lose precision, but never fails for a stored REAL.
type Float32 float32

func (f Float32) ToStorage() StorageValue {
	return NewReal(float64(f))
}

func (f *Float32) FromStorage(v StorageValue) error {
	if v.Kind() != KindReal {
		return kindMismatch(KindReal, v)
	}
	*f = Float32(float32(v.Float64()))
	return nil
}

type Float64 float64

func (f Float64) ToStorage() StorageValue {
	return NewReal(float64(f))
}

func (f *Float64) FromStorage(v StorageValue) error {
	if v.Kind() != KindReal {
		return kindMismatch(KindReal, v)
	}
	*f = Float64(v.Float64())
	return nil
}
