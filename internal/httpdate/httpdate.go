// package httpdate implements the HTTP-date formats defined in
// RFC 7231 section 7.1.1.1. senders are required to produce the
// RFC 1123 form, but for compatibility with HTTP/1.0 era software
// the obsolete RFC 850 and ANSI C asctime forms are accepted on
// input as well.
package httpdate

import (
	"fmt"
	"net/http"
	"time"
)

// layouts holds the accepted formats in preference order, RFC 1123
// first since it is the only one produced by conforming senders.
var layouts = []string{
	http.TimeFormat, // Sun, 06 Nov 1994 08:49:37 GMT
	time.RFC850,     // Sunday, 06-Nov-94 08:49:37 GMT
	time.ANSIC,      // Sun Nov  6 08:49:37 1994
}

// Parse interprets raw as an HTTP-date in any of the three accepted
// formats and returns the instant normalized to UTC.
//
// RFC 850 dates carry a two-digit year, which RFC 7231 notes is
// ambiguous. Parse resolves it the way time.Parse does: 69 through 99
// map to 1969-1999, 00 through 68 map to 2000-2068, so a value
// accepted here reads identically through net/http.ParseTime.
func Parse(raw string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("httpdate: cannot parse %q as an HTTP-date", raw)
}

// Format renders t as an RFC 1123 HTTP-date, the single form HTTP/1.1
// senders may emit, regardless of the format it was parsed from.
// HTTP-dates are always expressed in GMT, so t is converted to UTC
// first.
func Format(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
