package sqift

import "time"

// TimeLayout is the fixed layout used to store Time values as text:
// millisecond precision, no timezone offset. Times are rendered in UTC
// before formatting so the stored string is unambiguous.
const TimeLayout = "2006-01-02T15:04:05.000"

// DateFormat describes how date values are rendered to and parsed from their
// stored text form. A DateFormat is immutable once constructed; build one at
// startup and hand it to every conversion that needs it, either through
// FormattedTime or directly.
type DateFormat struct {
	// Layout is a time package reference layout.
	Layout string

	// Location is the timezone times are rendered in and parsed against. A
	// nil Location means UTC.
	Location *time.Location
}

// Format renders t in the format's timezone using its layout.
func (f DateFormat) Format(t time.Time) string {
	return t.In(f.location()).Format(f.Layout)
}

// Parse reads a string previously produced by Format. The string must match
// the layout exactly.
func (f DateFormat) Parse(s string) (time.Time, error) {
	return time.ParseInLocation(f.Layout, s, f.location())
}

func (f DateFormat) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// storageDateFormat is the process-wide format used by Time. It is set once
// here and read-only afterward, so concurrent conversions need no locking.
var storageDateFormat = DateFormat{Layout: TimeLayout, Location: time.UTC}

// StorageDateFormat returns the format Time values use for their stored text
// form.
func StorageDateFormat() DateFormat {
	return storageDateFormat
}
