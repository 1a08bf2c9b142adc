package sqift

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// String stores itself as TEXT unchanged.
type String string

func (s String) ToStorage() StorageValue {
	return NewText(string(s))
}

func (s *String) FromStorage(v StorageValue) error {
	if v.Kind() != KindText {
		return kindMismatch(KindText, v)
	}
	*s = String(v.Text())
	return nil
}

// URL is a *url.URL that stores itself as TEXT in its absolute string form.
// A URL with a nil V binds as the empty string.
type URL struct {
	V *url.URL
}

func (u URL) String() string {
	if u.V == nil {
		return ""
	}
	return u.V.String()
}

func (u URL) ToStorage() StorageValue {
	return NewText(u.String())
}

func (u *URL) FromStorage(v StorageValue) error {
	if v.Kind() != KindText {
		return kindMismatch(KindText, v)
	}

	s := v.Text()
	if s == "" {
		return NewError("empty string is not a URL", ErrParseFailure)
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return NewError("", err, ErrParseFailure)
	}

	u.V = parsed
	return nil
}

// Time is a time.Time variation that stores itself as TEXT in the layout
// given by StorageDateFormat. The stored form has millisecond precision, so
// a round trip truncates any finer fraction. To store with a different
// format, use FormattedTime.
type Time time.Time

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) ToStorage() StorageValue {
	return NewText(storageDateFormat.Format(time.Time(t)))
}

func (t *Time) FromStorage(v StorageValue) error {
	if v.Kind() != KindText {
		return kindMismatch(KindText, v)
	}

	parsed, err := storageDateFormat.Parse(v.Text())
	if err != nil {
		return NewError("", err, ErrParseFailure)
	}

	*t = Time(parsed)
	return nil
}

// FormattedTime is a Time that carries its own DateFormat instead of using
// the process-wide one. The zero Format falls back to StorageDateFormat.
// FromStorage preserves the receiver's Format, so set it before extracting.
type FormattedTime struct {
	V      time.Time
	Format DateFormat
}

func (t FormattedTime) format() DateFormat {
	if t.Format.Layout == "" {
		return storageDateFormat
	}
	return t.Format
}

func (t FormattedTime) ToStorage() StorageValue {
	return NewText(t.format().Format(t.V))
}

func (t *FormattedTime) FromStorage(v StorageValue) error {
	if v.Kind() != KindText {
		return kindMismatch(KindText, v)
	}

	parsed, err := t.format().Parse(v.Text())
	if err != nil {
		return NewError("", err, ErrParseFailure)
	}

	t.V = parsed
	return nil
}

// UUID is a uuid.UUID that stores itself as TEXT in the canonical
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
type UUID uuid.UUID

func (u UUID) ToStorage() StorageValue {
	return NewText(uuid.UUID(u).String())
}

func (u *UUID) FromStorage(v StorageValue) error {
	if v.Kind() != KindText {
		return kindMismatch(KindText, v)
	}

	parsed, err := uuid.Parse(v.Text())
	if err != nil {
		return NewError("", err, ErrParseFailure)
	}

	*u = UUID(parsed)
	return nil
}
