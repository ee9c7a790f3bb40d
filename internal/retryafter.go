package internal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/frankli0324/go-httpheader/internal/httpdate"
)

// RetryAfterName is the canonical field name of the Retry-After header.
const RetryAfterName = "Retry-After"

// maxDelaySeconds is the largest delta-seconds value representable as
// a time.Duration.
const maxDelaySeconds = uint64(1<<63-1) / uint64(time.Second)

// RetryAfter is the Retry-After response header defined in RFC 7231
// section 7.1.3. It carries either a relative delay in whole seconds
// or an absolute instant after which the client may retry again;
// exactly one of the two variants is set at any time.
//
// The zero value is a zero-second delay. Values are immutable once
// constructed apart from ParseValue, which replaces the whole value.
type RetryAfter struct {
	delay  time.Duration
	date   time.Time
	isDate bool
}

var _ Header = (*RetryAfter)(nil)

// NewDelay returns a Retry-After carrying a relative delay. d is
// truncated to whole seconds, the resolution of the wire format.
// negative durations have no wire representation and are rejected.
func NewDelay(d time.Duration) (*RetryAfter, error) {
	if d < 0 {
		return nil, fmt.Errorf("httpheader: negative Retry-After delay %v", d)
	}
	return &RetryAfter{delay: d.Truncate(time.Second)}, nil
}

// NewDate returns a Retry-After carrying an absolute instant. t is
// normalized to UTC and truncated to second precision, the resolution
// of an HTTP-date, so a value always formats back to the instant it
// was constructed from.
func NewDate(t time.Time) *RetryAfter {
	return &RetryAfter{date: t.UTC().Truncate(time.Second), isDate: true}
}

// ParseRetryAfter decodes a Retry-After field value, either a
// non-negative delta-seconds integer or an HTTP-date.
func ParseRetryAfter(raw string) (*RetryAfter, error) {
	r := new(RetryAfter)
	if err := r.ParseValue(raw); err != nil {
		return nil, err
	}
	return r, nil
}

// Name implements Header.
func (r *RetryAfter) Name() string { return RetryAfterName }

// ParseValue implements Header. delta-seconds are tried first: a run
// of ASCII digits is a delay, anything else must be an HTTP-date in
// one of the three RFC 7231 formats. signed numbers, fractions and
// empty input fail both readings and are rejected outright, as are
// delays beyond the supported duration range.
func (r *RetryAfter) ParseValue(raw string) error {
	if secs, err := strconv.ParseUint(raw, 10, 64); err == nil {
		if secs > maxDelaySeconds {
			return &ParseError{Name: RetryAfterName, Value: raw}
		}
		*r = RetryAfter{delay: time.Duration(secs) * time.Second}
		return nil
	}
	if t, err := httpdate.Parse(raw); err == nil {
		*r = RetryAfter{date: t, isDate: true}
		return nil
	}
	return &ParseError{Name: RetryAfterName, Value: raw}
}

// FormatValue implements Header. a delay renders as its decimal second
// count, an instant as an RFC 1123 date, the only output form RFC 7231
// permits, whichever format it was parsed from.
func (r *RetryAfter) FormatValue() string {
	if r.isDate {
		return httpdate.Format(r.date)
	}
	return strconv.FormatInt(int64(r.delay/time.Second), 10)
}

// Equal implements Header. two values are equal when they carry the
// same variant with the same delay or instant; a RetryAfter never
// equals a different header type.
func (r *RetryAfter) Equal(other Header) bool {
	o, ok := other.(*RetryAfter)
	if !ok || o == nil || r.isDate != o.isDate {
		return false
	}
	if r.isDate {
		return r.date.Equal(o.date)
	}
	return r.delay == o.delay
}

// Clone implements Header.
func (r *RetryAfter) Clone() Header {
	c := *r
	return &c
}

// Delay returns the relative delay and true when that variant is set.
func (r *RetryAfter) Delay() (time.Duration, bool) {
	if r.isDate {
		return 0, false
	}
	return r.delay, true
}

// Date returns the absolute instant, in UTC, and true when that
// variant is set.
func (r *RetryAfter) Date() (time.Time, bool) {
	if !r.isDate {
		return time.Time{}, false
	}
	return r.date, true
}

// String returns the wire representation, same as FormatValue.
func (r *RetryAfter) String() string { return r.FormatValue() }
