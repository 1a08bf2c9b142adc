package sqift

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_String_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		input String
	}{
		{"normal string", "nepeta"},
		{"empty string", ""},
		{"non-ASCII", "日本語のテキスト"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			v := tc.input.ToStorage()
			if !assert.Equal(KindText, v.Kind()) {
				return
			}

			var actual String
			err := actual.FromStorage(v)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.input, actual)
		})
	}
}

func Test_String_FromStorage_KindMismatch(t *testing.T) {
	assert := assert.New(t)

	var actual String
	err := actual.FromStorage(NewBlob([]byte("nepeta")))

	if !assert.Error(err) {
		return
	}
	assert.ErrorIs(err, ErrTypeMismatch)
}

func Test_URL_ToStorage(t *testing.T) {
	mustParse := func(s string) *url.URL {
		u, err := url.Parse(s)
		if err != nil {
			panic(err)
		}
		return u
	}

	testCases := []struct {
		name   string
		input  URL
		expect StorageValue
	}{
		{"absolute URL", URL{V: mustParse("https://example.com/a")}, NewText("https://example.com/a")},
		{"URL with query", URL{V: mustParse("https://example.com/a?b=c")}, NewText("https://example.com/a?b=c")},
		{"nil URL stores as empty text", URL{}, NewText("")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.True(tc.expect.Equal(tc.input.ToStorage()))
		})
	}
}

func Test_URL_FromStorage(t *testing.T) {
	testCases := []struct {
		name             string
		value            StorageValue
		expect           string
		expectErrToMatch []error
	}{
		{name: "absolute URL", value: NewText("https://example.com/a"), expect: "https://example.com/a"},
		{name: "relative URL", value: NewText("/a/b"), expect: "/a/b"},
		{name: "empty string", value: NewText(""), expectErrToMatch: []error{ErrParseFailure}},
		{name: "control character in URL", value: NewText("https://example.com/\x7f"), expectErrToMatch: []error{ErrParseFailure}},
		{name: "integer input", value: NewInteger(413), expectErrToMatch: []error{ErrTypeMismatch}},
		{name: "blob input", value: NewBlob([]byte("https://example.com/a")), expectErrToMatch: []error{ErrTypeMismatch}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			var actual URL
			err := actual.FromStorage(tc.value)

			if tc.expectErrToMatch == nil {
				if !assert.NoError(err) {
					return
				}
				assert.Equal(tc.expect, actual.String())
			} else {
				if !assert.Error(err) {
					return
				}
				for _, expectMatch := range tc.expectErrToMatch {
					assert.ErrorIs(err, expectMatch)
				}
			}
		})
	}
}

func Test_Time_ToStorage(t *testing.T) {
	testCases := []struct {
		name   string
		input  Time
		expect StorageValue
	}{
		{
			name:   "whole second",
			input:  Time(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)),
			expect: NewText("2024-01-15T10:30:00.000"),
		},
		{
			name:   "millisecond precision",
			input:  Time(time.Date(2024, 1, 15, 10, 30, 0, 25000000, time.UTC)),
			expect: NewText("2024-01-15T10:30:00.025"),
		},
		{
			name:   "sub-millisecond fraction is truncated",
			input:  Time(time.Date(2024, 1, 15, 10, 30, 0, 25999999, time.UTC)),
			expect: NewText("2024-01-15T10:30:00.025"),
		},
		{
			name:   "non-UTC time renders in UTC",
			input:  Time(time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("", -5*3600))),
			expect: NewText("2024-01-15T15:30:00.000"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.True(tc.expect.Equal(tc.input.ToStorage()), "got %s", tc.input.ToStorage())
		})
	}
}

func Test_Time_FromStorage(t *testing.T) {
	testCases := []struct {
		name             string
		value            StorageValue
		expect           time.Time
		expectErrToMatch []error
	}{
		{
			name:   "normal date",
			value:  NewText("2024-01-15T10:30:00.000"),
			expect: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:   "date with milliseconds",
			value:  NewText("2024-01-15T10:30:00.413"),
			expect: time.Date(2024, 1, 15, 10, 30, 0, 413000000, time.UTC),
		},
		{name: "malformed string", value: NewText("not-a-date"), expectErrToMatch: []error{ErrParseFailure}},
		{name: "missing fraction", value: NewText("2024-01-15T10:30:00"), expectErrToMatch: []error{ErrParseFailure}},
		{name: "empty string", value: NewText(""), expectErrToMatch: []error{ErrParseFailure}},
		{name: "integer input", value: NewInteger(1713024781), expectErrToMatch: []error{ErrTypeMismatch}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			var actual Time
			err := actual.FromStorage(tc.value)

			if tc.expectErrToMatch == nil {
				if !assert.NoError(err) {
					return
				}
				assert.True(tc.expect.Equal(actual.Time()), "expected %s, got %s", tc.expect, actual.Time())
			} else {
				if !assert.Error(err) {
					return
				}
				for _, expectMatch := range tc.expectErrToMatch {
					assert.ErrorIs(err, expectMatch)
				}
			}
		})
	}
}

func Test_Time_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	// truncated to millisecond precision, so the round trip is exact
	orig := Time(time.Date(2024, 1, 15, 10, 30, 0, 25000000, time.UTC))

	var actual Time
	err := actual.FromStorage(orig.ToStorage())

	if !assert.NoError(err) {
		return
	}
	assert.True(orig.Time().Equal(actual.Time()))
}

func Test_FormattedTime_RoundTrip_CustomFormat(t *testing.T) {
	assert := assert.New(t)

	format := DateFormat{Layout: "2006-01-02", Location: time.UTC}
	orig := FormattedTime{
		V:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Format: format,
	}

	v := orig.ToStorage()
	if !assert.True(NewText("2024-01-15").Equal(v)) {
		return
	}

	actual := FormattedTime{Format: format}
	err := actual.FromStorage(v)
	if !assert.NoError(err) {
		return
	}
	assert.True(orig.V.Equal(actual.V))
}

func Test_FormattedTime_ZeroFormat_UsesStorageDateFormat(t *testing.T) {
	assert := assert.New(t)

	orig := FormattedTime{V: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}

	assert.True(NewText("2024-01-15T10:30:00.000").Equal(orig.ToStorage()))
}

func Test_UUID_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	orig := UUID(uuid.MustParse("284968fa-1ec3-4d69-9a89-a6bbe60d2883"))

	v := orig.ToStorage()
	if !assert.True(NewText("284968fa-1ec3-4d69-9a89-a6bbe60d2883").Equal(v)) {
		return
	}

	var actual UUID
	err := actual.FromStorage(v)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(orig, actual)
}

func Test_UUID_FromStorage(t *testing.T) {
	testCases := []struct {
		name             string
		value            StorageValue
		expectErrToMatch []error
	}{
		{name: "valid UUID", value: NewText("284968fa-1ec3-4d69-9a89-a6bbe60d2883")},
		{name: "not a UUID", value: NewText("sup"), expectErrToMatch: []error{ErrParseFailure}},
		{name: "empty string", value: NewText(""), expectErrToMatch: []error{ErrParseFailure}},
		{name: "integer input", value: NewInteger(413), expectErrToMatch: []error{ErrTypeMismatch}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			var actual UUID
			err := actual.FromStorage(tc.value)

			if tc.expectErrToMatch == nil {
				assert.NoError(err)
			} else {
				if !assert.Error(err) {
					return
				}
				for _, expectMatch := range tc.expectErrToMatch {
					assert.ErrorIs(err, expectMatch)
				}
			}
		})
	}
}
