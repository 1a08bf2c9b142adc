// Package sqift is a small value-marshalling layer that sits between native
// Go types and the untyped storage representation of a SQLite database. It
// converts native values into one of the five kinds of value that SQLite can
// actually hold for a bound statement parameter, and converts raw stored
// values read back from a result column into a requested native type,
// including controlled numeric narrowing and date parsing.
//
// The layer has two halves. [Bindable] is implemented by every type that can
// be turned into a [StorageValue] for outbound parameter binding, and
// [Extractable] is implemented by every type that can be reconstructed from a
// stored value on the read path. Types that implement both are fully
// round-trippable and satisfy [Binding].
//
// Statement preparation, execution, and row iteration are not part of this
// package; the sqlite sub-package connects these conversions to an actual
// database.
package sqift

// Bindable is a value that can render itself as a StorageValue for binding to
// a statement parameter. ToStorage never fails and is a pure function of the
// receiver's current value; a given implementing type always produces the
// same storage kind.
type Bindable interface {
	ToStorage() StorageValue
}

// Extractable is a value that can reconstruct itself from a raw stored value
// read back from the database. FromStorage must be implemented on a pointer
// receiver. It returns an error matching ErrTypeMismatch when the stored
// value's kind is not the one the type binds as, and an error matching
// ErrParseFailure when a text-backed value does not parse; on error the
// receiver is left unmodified. Implementations never coerce across storage
// kinds.
type Extractable interface {
	FromStorage(v StorageValue) error
}

// Binding is implemented by types that can make the full round trip to the
// database and back.
type Binding interface {
	Bindable
	Extractable
}

// Null is the SQL NULL sentinel. Binding it attaches NULL to a statement
// parameter; it is the only Bindable whose ToStorage produces the null
// variant. It is deliberately not Extractable, as a stored NULL carries no
// value to reconstruct.
type Null struct{}

func (Null) ToStorage() StorageValue {
	return NewNull()
}
